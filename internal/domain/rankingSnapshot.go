package domain

import "time"

// RankingSnapshotResponse é o ranking mensal materializado de influenciadores
// por receita atribuída
type RankingSnapshotResponse struct {
	Ranking    []RankingSnapshotItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}

type RankingSnapshotItem struct {
	ID               int       `json:"id"`
	InfluencerID     string    `json:"influencer_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	InfluencerName   string    `json:"influencer_name"`
	Revenue          float64   `json:"revenue"`
	ROI              float64   `json:"roi"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
