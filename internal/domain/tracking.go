package domain

import "time"

// Brand representa as marcas conhecidas do portfólio
type Brand string

const (
	BrandMuscleBlaze Brand = "MuscleBlaze"
	BrandHKVitals    Brand = "HKVitals"
	BrandGritzo      Brand = "Gritzo"
	BrandHealthKart  Brand = "HealthKart"
	BrandUnknown     Brand = "unknown"
)

// TrackingData registra uma venda atribuída a um par campanha/influenciador.
// Vários registros podem referenciar o mesmo influenciador
type TrackingData struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Campaign     string    `json:"campaign"`
	InfluencerID string    `json:"influencer_id"`
	UserID       string    `json:"user_id"`
	Product      string    `json:"product"`
	Brand        Brand     `json:"brand"`
	Date         time.Time `json:"date"`
	Orders       int       `json:"orders"`
	Revenue      float64   `json:"revenue"`
}

// ParseBrand converte uma string em Brand
func ParseBrand(value string) Brand {
	switch Brand(value) {
	case BrandMuscleBlaze, BrandHKVitals, BrandGritzo, BrandHealthKart:
		return Brand(value)
	default:
		return BrandUnknown
	}
}
