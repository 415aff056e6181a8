// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

const (
	rankingSnapshotTable = "ranking_snapshot rs"
)

type RankingSnapshotRepository interface {
	GetByInfluencerID(influencerID string, month string) (*domain.RankingSnapshotItem, error)
	GetRanking() (*domain.RankingSnapshotResponse, error)
	SaveOrUpdateRanking(rankings []*domain.RankingSnapshotItem) error
}

type rankingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewRankingSnapshotRepository(conn *postgres.Connection) RankingSnapshotRepository {
	return &rankingSnapshotRepository{
		conn: conn,
	}
}

func (r *rankingSnapshotRepository) GetRanking() (*domain.RankingSnapshotResponse, error) {
	month := time.Now().Format("01-2006")

	queryBuilder := squirrel.
		Select(
			"rs.id",
			"rs.influencer_id",
			"rs.month",
			"rs.influencer_name",
			"rs.revenue",
			"rs.roi",
			"rs.position",
			"rs.position_change",
			"rs.previous_position",
			"rs.created_at",
			"rs.updated_at",
		).
		From(rankingSnapshotTable).
		Where(squirrel.Eq{"rs.month": month}).
		OrderBy("rs.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.RankingSnapshotResponse{
				Ranking:    []domain.RankingSnapshotItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.RankingSnapshotItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanRankingSnapshotItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.RankingSnapshotResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *rankingSnapshotRepository) GetByInfluencerID(influencerID string, month string) (*domain.RankingSnapshotItem, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.influencer_id, rs.month, rs.influencer_name, rs.revenue, rs.roi, rs.position, rs.position_change, rs.previous_position, rs.created_at, rs.updated_at").
		From(rankingSnapshotTable).
		Where(squirrel.Eq{"rs.influencer_id": influencerID, "rs.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	ranking, err := r.scanRankingSnapshotItemRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

func (r *rankingSnapshotRepository) SaveOrUpdateRanking(rankings []*domain.RankingSnapshotItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ranking_snapshot").
		Columns(
			"influencer_id",
			"month",
			"influencer_name",
			"revenue",
			"roi",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.InfluencerID,
			ranking.Month,
			ranking.InfluencerName,
			ranking.Revenue,
			ranking.ROI,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Upsert por influenciador/mês
	query = query.Suffix(`
		ON CONFLICT (influencer_id, month) DO UPDATE SET
			influencer_name = EXCLUDED.influencer_name,
			revenue = EXCLUDED.revenue,
			roi = EXCLUDED.roi,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *rankingSnapshotRepository) scanRankingSnapshotItem(rows *sql.Rows) (*domain.RankingSnapshotItem, error) {
	item := &domain.RankingSnapshotItem{}

	err := rows.Scan(
		&item.ID,
		&item.InfluencerID,
		&item.Month,
		&item.InfluencerName,
		&item.Revenue,
		&item.ROI,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *rankingSnapshotRepository) scanRankingSnapshotItemRow(row *sql.Row) (*domain.RankingSnapshotItem, error) {
	item := &domain.RankingSnapshotItem{}

	err := row.Scan(
		&item.ID,
		&item.InfluencerID,
		&item.Month,
		&item.InfluencerName,
		&item.Revenue,
		&item.ROI,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
