// Package ingesting é a fronteira de validação dos dados: converte CSV e
// entradas manuais em registros tipados antes de chegarem ao núcleo de
// cálculo. Coerção de tipos e defaults acontecem aqui, nunca no núcleo
package ingesting

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"github.com/vfg2006/influencer-analytics-api/pkg/utils"
)

// Collection identifica qual das quatro coleções um upload substitui
type Collection string

const (
	CollectionInfluencers Collection = "influencers"
	CollectionPosts       Collection = "posts"
	CollectionTracking    Collection = "tracking"
	CollectionPayouts     Collection = "payouts"
)

var ErrUnknownCollection = errors.New("coleção de dados desconhecida")

// ManualEntry é o formulário de entrada manual de dados de campanha
type ManualEntry struct {
	InfluencerName string  `json:"influencer_name"`
	Platform       string  `json:"platform"`
	Campaign       string  `json:"campaign"`
	Reach          int     `json:"reach"`
	Revenue        float64 `json:"revenue"`
	Orders         int     `json:"orders"`
	Payout         float64 `json:"payout"`
}

var ErrMissingEntryFields = errors.New("influencer_name, platform e campaign são obrigatórios")

type Ingester interface {
	// UploadCSV substitui uma coleção inteira do snapshot pelos registros do
	// CSV e retorna quantos registros foram carregados
	UploadCSV(ctx context.Context, collection Collection, reader io.Reader) (int, error)

	// AddManualEntry acrescenta ao snapshot o conjunto de registros ligados
	// gerado por uma entrada manual de campanha
	AddManualEntry(ctx context.Context, entry ManualEntry) error
}

type Service struct {
	sessions    *store.SessionStore
	datasetRepo repository.DatasetRepository
}

func NewService(sessions *store.SessionStore, datasetRepo repository.DatasetRepository) Ingester {
	return &Service{
		sessions:    sessions,
		datasetRepo: datasetRepo,
	}
}

func (s *Service) UploadCSV(ctx context.Context, collection Collection, reader io.Reader) (int, error) {
	snapshot := s.sessions.Snapshot()

	// O snapshot ativo nunca é modificado; montamos um novo e trocamos por
	// inteiro
	next := &domain.Dataset{
		Source:      domain.DatasetSourceCSV,
		Influencers: snapshot.Influencers,
		Posts:       snapshot.Posts,
		Tracking:    snapshot.Tracking,
		Payouts:     snapshot.Payouts,
	}

	var count int

	switch collection {
	case CollectionInfluencers:
		influencers, err := parseInfluencers(reader)
		if err != nil {
			return 0, err
		}
		next.Influencers = influencers
		count = len(influencers)

	case CollectionPosts:
		posts, err := parsePosts(reader)
		if err != nil {
			return 0, err
		}
		next.Posts = posts
		count = len(posts)

	case CollectionTracking:
		tracking, err := parseTracking(reader)
		if err != nil {
			return 0, err
		}
		next.Tracking = tracking
		count = len(tracking)

	case CollectionPayouts:
		payouts, err := parsePayouts(reader)
		if err != nil {
			return 0, err
		}
		next.Payouts = payouts
		count = len(payouts)

	default:
		return 0, errors.Wrapf(ErrUnknownCollection, "%q", collection)
	}

	s.sessions.Replace(next)
	s.persistSnapshot(ctx, next)

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"records":    count,
	}).Info("Coleção substituída por upload de CSV")

	return count, nil
}

func (s *Service) AddManualEntry(ctx context.Context, entry ManualEntry) error {
	if entry.InfluencerName == "" || entry.Platform == "" || entry.Campaign == "" {
		return ErrMissingEntryFields
	}

	influencerID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID para a entrada manual")
	}

	platform := domain.ParsePlatform(entry.Platform)
	today := time.Now().Truncate(24 * time.Hour)

	influencer := &domain.Influencer{
		ID:       influencerID,
		Name:     entry.InfluencerName,
		Category: domain.CategoryUnknown,
		Gender:   domain.GenderUnknown,
		Platform: platform,
	}

	post := &domain.Post{
		ID:           newRecordID(),
		InfluencerID: influencerID,
		Platform:     platform,
		Date:         today,
		Reach:        clampInt(entry.Reach),
	}

	tracking := &domain.TrackingData{
		ID:           newRecordID(),
		Source:       string(domain.DatasetSourceManual),
		Campaign:     entry.Campaign,
		InfluencerID: influencerID,
		Brand:        domain.BrandUnknown,
		Date:         today,
		Orders:       clampInt(entry.Orders),
		Revenue:      clampDecimal(entry.Revenue),
	}

	payout := &domain.Payout{
		ID:           newRecordID(),
		InfluencerID: influencerID,
		Basis:        domain.PayoutBasisPost,
		TotalPayout:  clampDecimal(entry.Payout),
		Campaign:     entry.Campaign,
		Date:         today,
	}

	snapshot := s.sessions.Snapshot()
	next := &domain.Dataset{
		Source:      domain.DatasetSourceManual,
		Influencers: append(copyOf(snapshot.Influencers), influencer),
		Posts:       append(copyOf(snapshot.Posts), post),
		Tracking:    append(copyOf(snapshot.Tracking), tracking),
		Payouts:     append(copyOf(snapshot.Payouts), payout),
	}

	s.sessions.Replace(next)
	s.persistSnapshot(ctx, next)

	logrus.WithFields(logrus.Fields{
		"influencer": entry.InfluencerName,
		"campaign":   entry.Campaign,
	}).Info("Entrada manual de campanha adicionada ao snapshot")

	return nil
}

// persistSnapshot grava o snapshot recém-trocado no banco para que um restart
// recarregue os mesmos dados. Falha de persistência não invalida a sessão: o
// snapshot em memória continua valendo
func (s *Service) persistSnapshot(ctx context.Context, dataset *domain.Dataset) {
	if err := s.datasetRepo.SaveDataset(ctx, dataset); err != nil {
		logrus.WithError(err).Error("Erro ao persistir o snapshot da sessão")
	}
}

func newRecordID() string {
	id, _ := utils.GenerateID()
	return id
}

func clampInt(value int) int {
	if value < 0 {
		return 0
	}
	return value
}

func clampDecimal(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

// copyOf evita que o append compartilhe o array de backing com o snapshot
// anterior
func copyOf[T any](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	return out
}
