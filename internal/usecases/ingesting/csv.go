package ingesting

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/pkg/utils"
)

// row dá acesso por nome de coluna a uma linha do CSV. Campos numéricos
// ausentes ou malformados valem 0 e valores negativos são zerados, para que o
// núcleo de cálculo possa assumir entradas numéricas não-negativas
type row struct {
	header map[string]int
	fields []string
}

func (r row) text(column string) string {
	index, ok := r.header[column]
	if !ok || index >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[index])
}

func (r row) integer(column string) int {
	value, err := strconv.Atoi(r.text(column))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (r row) decimal(column string) float64 {
	value, err := strconv.ParseFloat(r.text(column), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (r row) date(column string) time.Time {
	date, err := utils.ParseDate(r.text(column))
	if err != nil || date == nil {
		return time.Time{}
	}
	return *date
}

func (r row) optionalInt(column string) *int {
	if r.text(column) == "" {
		return nil
	}
	value := r.integer(column)
	return &value
}

func (r row) optionalDecimal(column string) *float64 {
	if r.text(column) == "" {
		return nil
	}
	value := r.decimal(column)
	return &value
}

func (r row) empty() bool {
	for _, field := range r.fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// readRows lê o CSV inteiro, usando a primeira linha como cabeçalho e
// descartando linhas em branco
func readRows(reader io.Reader) ([]row, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo CSV")
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for index, column := range records[0] {
		header[strings.TrimSpace(column)] = index
	}

	rows := make([]row, 0, len(records)-1)
	for _, fields := range records[1:] {
		r := row{header: header, fields: fields}
		if r.empty() {
			continue
		}
		rows = append(rows, r)
	}

	return rows, nil
}

func parseInfluencers(reader io.Reader) ([]*domain.Influencer, error) {
	rows, err := readRows(reader)
	if err != nil {
		return nil, err
	}

	influencers := make([]*domain.Influencer, 0, len(rows))
	for _, r := range rows {
		influencers = append(influencers, &domain.Influencer{
			ID:             recordID(r),
			Name:           r.text("name"),
			Category:       domain.ParseCategory(r.text("category")),
			Gender:         domain.ParseGender(r.text("gender")),
			FollowerCount:  r.integer("followerCount"),
			Platform:       domain.ParsePlatform(r.text("platform")),
			EngagementRate: r.optionalDecimal("engagement_rate"),
		})
	}

	return influencers, nil
}

func parsePosts(reader io.Reader) ([]*domain.Post, error) {
	rows, err := readRows(reader)
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, &domain.Post{
			ID:           recordID(r),
			InfluencerID: r.text("influencer_id"),
			Platform:     domain.ParsePlatform(r.text("platform")),
			Date:         r.date("date"),
			URL:          r.text("url"),
			Caption:      r.text("caption"),
			Reach:        r.integer("reach"),
			Likes:        r.integer("likes"),
			Comments:     r.integer("comments"),
			Shares:       r.optionalInt("shares"),
		})
	}

	return posts, nil
}

func parseTracking(reader io.Reader) ([]*domain.TrackingData, error) {
	rows, err := readRows(reader)
	if err != nil {
		return nil, err
	}

	tracking := make([]*domain.TrackingData, 0, len(rows))
	for _, r := range rows {
		tracking = append(tracking, &domain.TrackingData{
			ID:           recordID(r),
			Source:       r.text("source"),
			Campaign:     r.text("campaign"),
			InfluencerID: r.text("influencer_id"),
			UserID:       r.text("user_id"),
			Product:      r.text("product"),
			Brand:        domain.ParseBrand(r.text("brand")),
			Date:         r.date("date"),
			Orders:       r.integer("orders"),
			Revenue:      r.decimal("revenue"),
		})
	}

	return tracking, nil
}

func parsePayouts(reader io.Reader) ([]*domain.Payout, error) {
	rows, err := readRows(reader)
	if err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, 0, len(rows))
	for _, r := range rows {
		payouts = append(payouts, &domain.Payout{
			ID:           recordID(r),
			InfluencerID: r.text("influencer_id"),
			Basis:        domain.ParsePayoutBasis(r.text("basis")),
			Rate:         r.decimal("rate"),
			Orders:       r.integer("orders"),
			TotalPayout:  r.decimal("total_payout"),
			Campaign:     r.text("campaign"),
			Date:         r.date("date"),
		})
	}

	return payouts, nil
}

// recordID usa o id do arquivo quando presente, senão gera um novo
func recordID(r row) string {
	if id := r.text("id"); id != "" {
		return id
	}
	id, _ := utils.GenerateID()
	return id
}
