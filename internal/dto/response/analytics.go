package response

import (
	"flight-booking/internal/data/entity"
)

type RouteStatsResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	FlightsCount int64   `json:"flights_count"`
	AvgEconomy   float64 `json:"avg_economy"`
	AvgBusiness  float64 `json:"avg_business"`
	MinEconomy   float64 `json:"min_economy"`
	MaxEconomy   float64 `json:"max_economy"`
}

type CarrierStatsResponse struct {
	OperatedBy   string  `json:"operated_by"`
	FlightsCount int64   `json:"flights_count"`
	AvgEconomy   float64 `json:"avg_economy"`
	AvgBusiness  float64 `json:"avg_business"`
	PremiumGap   float64 `json:"premium_gap"`
	MinEconomy   float64 `json:"min_economy"`
	MaxEconomy   float64 `json:"max_economy"`
	MinBusiness  float64 `json:"min_business"`
	MaxBusiness  float64 `json:"max_business"`
}

// Helper converters
func RouteStatsToResponse(stats []*entity.RouteStats) []RouteStatsResponse {
	result := make([]RouteStatsResponse, 0, len(stats))
	for _, s := range stats {
		result = append(result, RouteStatsResponse{
			From:         s.From,
			To:           s.To,
			FlightsCount: s.FlightsCount,
			AvgEconomy:   s.AvgEconomy,
			AvgBusiness:  s.AvgBusiness,
			MinEconomy:   s.MinEconomy,
			MaxEconomy:   s.MaxEconomy,
		})
	}
	return result
}

func CarrierStatsToResponse(stats []*entity.CarrierStats) []CarrierStatsResponse {
	result := make([]CarrierStatsResponse, 0, len(stats))
	for _, s := range stats {
		result = append(result, CarrierStatsResponse{
			OperatedBy:   s.OperatedBy,
			FlightsCount: s.FlightsCount,
			AvgEconomy:   s.AvgEconomy,
			AvgBusiness:  s.AvgBusiness,
			PremiumGap:   s.PremiumGap,
			MinEconomy:   s.MinEconomy,
			MaxEconomy:   s.MaxEconomy,
			MinBusiness:  s.MinBusiness,
			MaxBusiness:  s.MaxBusiness,
		})
	}
	return result
}
