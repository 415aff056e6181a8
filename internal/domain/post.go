package domain

import "time"

// Post representa uma publicação de um influenciador em uma rede social.
// Cada post pertence a exatamente um influenciador via InfluencerID
type Post struct {
	ID           string    `json:"id"`
	InfluencerID string    `json:"influencer_id"`
	Platform     Platform  `json:"platform"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url"`
	Caption      string    `json:"caption"`
	Reach        int       `json:"reach"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	Shares       *int      `json:"shares,omitempty"` // Opcional, nem toda plataforma expõe
}

// Engagements retorna o total de interações do post (likes + comentários +
// compartilhamentos, quando presentes)
func (p *Post) Engagements() int {
	shares := 0
	if p.Shares != nil {
		shares = *p.Shares
	}
	return p.Likes + p.Comments + shares
}
