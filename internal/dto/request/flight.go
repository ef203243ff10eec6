package request

type SearchFlightsRequest struct {
	From string `json:"from" validate:"required,min=2,max=64"`
	To   string `json:"to" validate:"required,min=2,max=64"`
}
