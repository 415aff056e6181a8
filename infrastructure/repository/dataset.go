package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

const (
	influencersTable  = "influencers"
	postsTable        = "posts"
	trackingDataTable = "tracking_data"
	payoutsTable      = "payouts"
)

// DatasetRepository persiste o snapshot ativo da sessão de análise. O
// snapshot é gravado por inteiro: cada SaveDataset substitui o conteúdo
// anterior das quatro coleções
type DatasetRepository interface {
	LoadDataset() (*domain.Dataset, error)
	SaveDataset(ctx context.Context, dataset *domain.Dataset) error
}

type datasetRepository struct {
	conn *postgres.Connection
}

func NewDatasetRepository(conn *postgres.Connection) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) LoadDataset() (*domain.Dataset, error) {
	influencers, err := r.loadInfluencers()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar influenciadores: %w", err)
	}

	posts, err := r.loadPosts()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar posts: %w", err)
	}

	tracking, err := r.loadTracking()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar dados de tracking: %w", err)
	}

	payouts, err := r.loadPayouts()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar payouts: %w", err)
	}

	return &domain.Dataset{
		Source:      domain.DatasetSourceSeed,
		Influencers: influencers,
		Posts:       posts,
		Tracking:    tracking,
		Payouts:     payouts,
	}, nil
}

func (r *datasetRepository) loadInfluencers() ([]*domain.Influencer, error) {
	query, args, err := squirrel.
		Select("id", "name", "category", "gender", "follower_count", "platform", "avatar_url", "engagement_rate").
		From(influencersTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	influencers := make([]*domain.Influencer, 0)
	for rows.Next() {
		var inf domain.Influencer
		var category, gender, platform string

		if err := rows.Scan(
			&inf.ID,
			&inf.Name,
			&category,
			&gender,
			&inf.FollowerCount,
			&platform,
			&inf.AvatarURL,
			&inf.EngagementRate,
		); err != nil {
			return nil, err
		}

		inf.Category = domain.ParseCategory(category)
		inf.Gender = domain.ParseGender(gender)
		inf.Platform = domain.ParsePlatform(platform)

		influencers = append(influencers, &inf)
	}

	return influencers, rows.Err()
}

func (r *datasetRepository) loadPosts() ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select("id", "influencer_id", "platform", "date", "url", "caption", "reach", "likes", "comments", "shares").
		From(postsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		var platform string

		if err := rows.Scan(
			&post.ID,
			&post.InfluencerID,
			&platform,
			&post.Date,
			&post.URL,
			&post.Caption,
			&post.Reach,
			&post.Likes,
			&post.Comments,
			&post.Shares,
		); err != nil {
			return nil, err
		}

		post.Platform = domain.ParsePlatform(platform)

		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

func (r *datasetRepository) loadTracking() ([]*domain.TrackingData, error) {
	query, args, err := squirrel.
		Select("id", "source", "campaign", "influencer_id", "user_id", "product", "brand", "date", "orders", "revenue").
		From(trackingDataTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracking := make([]*domain.TrackingData, 0)
	for rows.Next() {
		var td domain.TrackingData
		var brand string

		if err := rows.Scan(
			&td.ID,
			&td.Source,
			&td.Campaign,
			&td.InfluencerID,
			&td.UserID,
			&td.Product,
			&brand,
			&td.Date,
			&td.Orders,
			&td.Revenue,
		); err != nil {
			return nil, err
		}

		td.Brand = domain.ParseBrand(brand)

		tracking = append(tracking, &td)
	}

	return tracking, rows.Err()
}

func (r *datasetRepository) loadPayouts() ([]*domain.Payout, error) {
	query, args, err := squirrel.
		Select("id", "influencer_id", "basis", "rate", "orders", "total_payout", "campaign", "date").
		From(payoutsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payouts := make([]*domain.Payout, 0)
	for rows.Next() {
		var payout domain.Payout
		var basis string

		if err := rows.Scan(
			&payout.ID,
			&payout.InfluencerID,
			&basis,
			&payout.Rate,
			&payout.Orders,
			&payout.TotalPayout,
			&payout.Campaign,
			&payout.Date,
		); err != nil {
			return nil, err
		}

		payout.Basis = domain.ParsePayoutBasis(basis)

		payouts = append(payouts, &payout)
	}

	return payouts, rows.Err()
}

func (r *datasetRepository) SaveDataset(ctx context.Context, dataset *domain.Dataset) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Substitui o snapshot anterior por inteiro
		for _, table := range []string{payoutsTable, trackingDataTable, postsTable, influencersTable} {
			if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("erro ao limpar a tabela %s: %w", table, err)
			}
		}

		if err := r.insertInfluencers(tx, dataset.Influencers); err != nil {
			return err
		}

		if err := r.insertPosts(tx, dataset.Posts); err != nil {
			return err
		}

		if err := r.insertTracking(tx, dataset.Tracking); err != nil {
			return err
		}

		return r.insertPayouts(tx, dataset.Payouts)
	})
}

func (r *datasetRepository) insertInfluencers(tx *sql.Tx, influencers []*domain.Influencer) error {
	if len(influencers) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(influencersTable).
		Columns("id", "name", "category", "gender", "follower_count", "platform", "avatar_url", "engagement_rate").
		PlaceholderFormat(squirrel.Dollar)

	for _, inf := range influencers {
		query = query.Values(
			inf.ID,
			inf.Name,
			string(inf.Category),
			string(inf.Gender),
			inf.FollowerCount,
			string(inf.Platform),
			inf.AvatarURL,
			inf.EngagementRate,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de influenciadores: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir influenciadores: %w", err)
	}

	return nil
}

func (r *datasetRepository) insertPosts(tx *sql.Tx, posts []*domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(postsTable).
		Columns("id", "influencer_id", "platform", "date", "url", "caption", "reach", "likes", "comments", "shares").
		PlaceholderFormat(squirrel.Dollar)

	for _, post := range posts {
		query = query.Values(
			post.ID,
			post.InfluencerID,
			string(post.Platform),
			post.Date,
			post.URL,
			post.Caption,
			post.Reach,
			post.Likes,
			post.Comments,
			post.Shares,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de posts: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir posts: %w", err)
	}

	return nil
}

func (r *datasetRepository) insertTracking(tx *sql.Tx, tracking []*domain.TrackingData) error {
	if len(tracking) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(trackingDataTable).
		Columns("id", "source", "campaign", "influencer_id", "user_id", "product", "brand", "date", "orders", "revenue").
		PlaceholderFormat(squirrel.Dollar)

	for _, td := range tracking {
		query = query.Values(
			td.ID,
			td.Source,
			td.Campaign,
			td.InfluencerID,
			td.UserID,
			td.Product,
			string(td.Brand),
			td.Date,
			td.Orders,
			td.Revenue,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de tracking: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir dados de tracking: %w", err)
	}

	return nil
}

func (r *datasetRepository) insertPayouts(tx *sql.Tx, payouts []*domain.Payout) error {
	if len(payouts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(payoutsTable).
		Columns("id", "influencer_id", "basis", "rate", "orders", "total_payout", "campaign", "date").
		PlaceholderFormat(squirrel.Dollar)

	for _, payout := range payouts {
		query = query.Values(
			payout.ID,
			payout.InfluencerID,
			string(payout.Basis),
			payout.Rate,
			payout.Orders,
			payout.TotalPayout,
			payout.Campaign,
			payout.Date,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de payouts: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir payouts: %w", err)
	}

	return nil
}
