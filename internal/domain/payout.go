package domain

import "time"

// PayoutBasis indica a base de cálculo da remuneração do influenciador
type PayoutBasis string

const (
	PayoutBasisPost    PayoutBasis = "post"
	PayoutBasisOrder   PayoutBasis = "order"
	PayoutBasisUnknown PayoutBasis = "unknown"
)

// Payout representa um registro de remuneração pago a um influenciador por
// uma campanha
type Payout struct {
	ID           string      `json:"id"`
	InfluencerID string      `json:"influencer_id"`
	Basis        PayoutBasis `json:"basis"`
	Rate         float64     `json:"rate"`
	Orders       int         `json:"orders"`
	TotalPayout  float64     `json:"total_payout"`
	Campaign     string      `json:"campaign"`
	Date         time.Time   `json:"date"`
}

// ParsePayoutBasis converte uma string em PayoutBasis
func ParsePayoutBasis(value string) PayoutBasis {
	switch PayoutBasis(value) {
	case PayoutBasisPost, PayoutBasisOrder:
		return PayoutBasis(value)
	default:
		return PayoutBasisUnknown
	}
}
