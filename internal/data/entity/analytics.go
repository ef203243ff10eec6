package entity

// RouteStats aggregates the catalog per (origin, destination) pair.
type RouteStats struct {
	From         string  `db:"origin"`
	To           string  `db:"destination"`
	FlightsCount int64   `db:"flights_count"`
	AvgEconomy   float64 `db:"avg_economy"`
	AvgBusiness  float64 `db:"avg_business"`
	MinEconomy   float64 `db:"min_economy"`
	MaxEconomy   float64 `db:"max_economy"`
}

// CarrierStats aggregates the catalog per carrier. PremiumGap is the
// average business fare minus the average economy fare.
type CarrierStats struct {
	OperatedBy   string  `db:"operated_by"`
	FlightsCount int64   `db:"flights_count"`
	AvgEconomy   float64 `db:"avg_economy"`
	AvgBusiness  float64 `db:"avg_business"`
	PremiumGap   float64 `db:"premium_gap"`
	MinEconomy   float64 `db:"min_economy"`
	MaxEconomy   float64 `db:"max_economy"`
	MinBusiness  float64 `db:"min_business"`
	MaxBusiness  float64 `db:"max_business"`
}
