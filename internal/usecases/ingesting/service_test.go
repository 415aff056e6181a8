package ingesting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// newTestService monta o serviço com um repositório que aceita qualquer
// persistência; os testes de persistência usam expectativas próprias
func newTestService(t *testing.T, sessions *store.SessionStore) Ingester {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	mockDatasetRepo.EXPECT().SaveDataset(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return NewService(sessions, mockDatasetRepo)
}

func TestService_UploadCSV_Influencers(t *testing.T) {
	sessions := store.NewSessionStore()
	service := newTestService(t, sessions)

	csv := strings.Join([]string{
		"id,name,category,gender,followerCount,platform,engagement_rate",
		"1,Fitness Guru Raj,fitness,male,250000,instagram,4.2",
		"2,Wellness With Priya,wellness,female,180000,youtube,6.1",
	}, "\n")

	count, err := service.UploadCSV(context.Background(), CollectionInfluencers, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	snapshot := sessions.Snapshot()
	assert.Equal(t, domain.DatasetSourceCSV, snapshot.Source)
	require.Len(t, snapshot.Influencers, 2)

	raj := snapshot.Influencers[0]
	assert.Equal(t, "1", raj.ID)
	assert.Equal(t, "Fitness Guru Raj", raj.Name)
	assert.Equal(t, domain.CategoryFitness, raj.Category)
	assert.Equal(t, domain.GenderMale, raj.Gender)
	assert.Equal(t, 250000, raj.FollowerCount)
	assert.Equal(t, domain.PlatformInstagram, raj.Platform)
	require.NotNil(t, raj.EngagementRate)
	assert.Equal(t, 4.2, *raj.EngagementRate)
}

func TestService_UploadCSV_Coercion(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		validate func(t *testing.T, snapshot *domain.Dataset)
	}{
		{
			name: "Campos numéricos ausentes ou malformados devem valer 0",
			csv: strings.Join([]string{
				"id,influencer_id,platform,date,reach,likes,comments",
				"p1,1,instagram,2024-01-15,abc,,12",
			}, "\n"),
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				require.Len(t, snapshot.Posts, 1)
				assert.Equal(t, 0, snapshot.Posts[0].Reach)
				assert.Equal(t, 0, snapshot.Posts[0].Likes)
				assert.Equal(t, 12, snapshot.Posts[0].Comments)
			},
		},
		{
			name: "Valores negativos devem ser zerados",
			csv: strings.Join([]string{
				"id,influencer_id,platform,date,reach,likes,comments",
				"p1,1,instagram,2024-01-15,-500,-10,3",
			}, "\n"),
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				require.Len(t, snapshot.Posts, 1)
				assert.Equal(t, 0, snapshot.Posts[0].Reach)
				assert.Equal(t, 0, snapshot.Posts[0].Likes)
			},
		},
		{
			name: "Shares ausente deve ficar nulo, não zero",
			csv: strings.Join([]string{
				"id,influencer_id,platform,date,reach,likes,comments,shares",
				"p1,1,instagram,2024-01-15,100,10,3,",
				"p2,1,instagram,2024-01-15,100,10,3,7",
			}, "\n"),
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				require.Len(t, snapshot.Posts, 2)
				assert.Nil(t, snapshot.Posts[0].Shares)
				require.NotNil(t, snapshot.Posts[1].Shares)
				assert.Equal(t, 7, *snapshot.Posts[1].Shares)
			},
		},
		{
			name: "Linhas em branco devem ser descartadas",
			csv: strings.Join([]string{
				"id,influencer_id,platform,date,reach,likes,comments",
				"p1,1,instagram,2024-01-15,100,10,3",
				",,,,,,",
			}, "\n"),
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				assert.Len(t, snapshot.Posts, 1)
			},
		},
		{
			name: "Linha sem id deve receber um id gerado",
			csv: strings.Join([]string{
				"id,influencer_id,platform,date,reach,likes,comments",
				",1,instagram,2024-01-15,100,10,3",
			}, "\n"),
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				require.Len(t, snapshot.Posts, 1)
				assert.NotEmpty(t, snapshot.Posts[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := store.NewSessionStore()
			service := newTestService(t, sessions)

			_, err := service.UploadCSV(context.Background(), CollectionPosts, strings.NewReader(tt.csv))

			require.NoError(t, err)
			tt.validate(t, sessions.Snapshot())
		})
	}
}

func TestService_UploadCSV_Tracking(t *testing.T) {
	sessions := store.NewSessionStore()
	service := newTestService(t, sessions)

	csv := strings.Join([]string{
		"id,source,campaign,influencer_id,user_id,product,brand,date,orders,revenue",
		"t1,instagram,Winter Fitness 2024,1,user_001,Whey Protein Gold,MuscleBlaze,2024-01-15,3,4500",
		"t2,youtube,Wellness Journey,2,user_002,Multivitamin Pro,MarcaInexistente,2024-01-18,5,2800.50",
	}, "\n")

	count, err := service.UploadCSV(context.Background(), CollectionTracking, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	tracking := sessions.Snapshot().Tracking
	require.Len(t, tracking, 2)
	assert.Equal(t, domain.BrandMuscleBlaze, tracking[0].Brand)
	assert.Equal(t, 4500.0, tracking[0].Revenue)
	assert.Equal(t, 3, tracking[0].Orders)

	// Marca não reconhecida cai na variante unknown em vez de ser aceita
	assert.Equal(t, domain.BrandUnknown, tracking[1].Brand)
	assert.Equal(t, 2800.50, tracking[1].Revenue)
}

func TestService_UploadCSV_ReplacesOnlyTargetCollection(t *testing.T) {
	sessions := store.NewSessionStore()
	sessions.Replace(SeedDataset())
	service := newTestService(t, sessions)

	csv := strings.Join([]string{
		"id,influencer_id,basis,rate,orders,total_payout,campaign,date",
		"pay1,1,post,1000,0,1000,Nova Campanha,2024-02-01",
	}, "\n")

	count, err := service.UploadCSV(context.Background(), CollectionPayouts, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	snapshot := sessions.Snapshot()
	assert.Len(t, snapshot.Payouts, 1)

	// As demais coleções do snapshot anterior permanecem intactas
	assert.Len(t, snapshot.Influencers, 5)
	assert.Len(t, snapshot.Posts, 3)
	assert.Len(t, snapshot.Tracking, 3)
	assert.Equal(t, domain.DatasetSourceCSV, snapshot.Source)
}

func TestService_UploadCSV_PersistsNewSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := store.NewSessionStore()
	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(sessions, mockDatasetRepo)

	var saved *domain.Dataset
	mockDatasetRepo.EXPECT().
		SaveDataset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dataset *domain.Dataset) error {
			saved = dataset
			return nil
		})

	csv := strings.Join([]string{
		"id,name,category,gender,followerCount,platform",
		"1,Fitness Guru Raj,fitness,male,250000,instagram",
	}, "\n")

	count, err := service.UploadCSV(context.Background(), CollectionInfluencers, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// O snapshot persistido é o mesmo que ficou ativo na sessão
	require.NotNil(t, saved)
	assert.Same(t, sessions.Snapshot(), saved)
	assert.Len(t, saved.Influencers, 1)
}

func TestService_UploadCSV_PersistFailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := store.NewSessionStore()
	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(sessions, mockDatasetRepo)

	mockDatasetRepo.EXPECT().
		SaveDataset(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	csv := strings.Join([]string{
		"id,name,category,gender,followerCount,platform",
		"1,Fitness Guru Raj,fitness,male,250000,instagram",
	}, "\n")

	// Falha de persistência não derruba o upload; a sessão segue com o novo
	// snapshot
	count, err := service.UploadCSV(context.Background(), CollectionInfluencers, strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, sessions.Snapshot().Influencers, 1)
}

func TestService_UploadCSV_UnknownCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := store.NewSessionStore()
	sessions.Replace(SeedDataset())

	// Upload rejeitado não pode persistir nada
	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(sessions, mockDatasetRepo)

	before := sessions.Snapshot()

	count, err := service.UploadCSV(context.Background(), Collection("vendas"), strings.NewReader("id\n1"))

	assert.ErrorIs(t, err, ErrUnknownCollection)
	assert.Equal(t, 0, count)

	// Upload rejeitado não pode trocar o snapshot
	assert.Same(t, before, sessions.Snapshot())
}

func TestService_UploadCSV_InvalidCSV(t *testing.T) {
	sessions := store.NewSessionStore()
	service := newTestService(t, sessions)

	// Aspas desequilibradas tornam o arquivo ilegível
	_, err := service.UploadCSV(context.Background(), CollectionInfluencers, strings.NewReader("id,name\n1,\"aberto"))

	assert.Error(t, err)
}

func TestService_AddManualEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    ManualEntry
		hasError bool
		validate func(t *testing.T, snapshot *domain.Dataset)
	}{
		{
			name: "Deve criar influenciador, post, tracking e payout ligados pelo mesmo ID",
			entry: ManualEntry{
				InfluencerName: "Nova Influenciadora",
				Platform:       "instagram",
				Campaign:       "Campanha Manual",
				Reach:          1200,
				Revenue:        800.50,
				Orders:         4,
				Payout:         300,
			},
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				require.Len(t, snapshot.Influencers, 1)
				require.Len(t, snapshot.Posts, 1)
				require.Len(t, snapshot.Tracking, 1)
				require.Len(t, snapshot.Payouts, 1)

				influencer := snapshot.Influencers[0]
				assert.Equal(t, "Nova Influenciadora", influencer.Name)
				assert.Equal(t, domain.PlatformInstagram, influencer.Platform)
				assert.Equal(t, domain.CategoryUnknown, influencer.Category)
				assert.Equal(t, domain.GenderUnknown, influencer.Gender)

				assert.Equal(t, influencer.ID, snapshot.Posts[0].InfluencerID)
				assert.Equal(t, influencer.ID, snapshot.Tracking[0].InfluencerID)
				assert.Equal(t, influencer.ID, snapshot.Payouts[0].InfluencerID)

				assert.Equal(t, 1200, snapshot.Posts[0].Reach)
				assert.Equal(t, 800.50, snapshot.Tracking[0].Revenue)
				assert.Equal(t, 4, snapshot.Tracking[0].Orders)
				assert.Equal(t, "Campanha Manual", snapshot.Tracking[0].Campaign)
				assert.Equal(t, 300.0, snapshot.Payouts[0].TotalPayout)

				assert.Equal(t, domain.DatasetSourceManual, snapshot.Source)
			},
		},
		{
			name: "Valores negativos devem ser zerados",
			entry: ManualEntry{
				InfluencerName: "Influenciadora",
				Platform:       "tiktok",
				Campaign:       "Campanha",
				Reach:          -100,
				Revenue:        -500,
				Orders:         -2,
				Payout:         -50,
			},
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				assert.Equal(t, 0, snapshot.Posts[0].Reach)
				assert.Equal(t, 0.0, snapshot.Tracking[0].Revenue)
				assert.Equal(t, 0, snapshot.Tracking[0].Orders)
				assert.Equal(t, 0.0, snapshot.Payouts[0].TotalPayout)
			},
		},
		{
			name: "Plataforma não reconhecida deve cair na variante unknown",
			entry: ManualEntry{
				InfluencerName: "Influenciadora",
				Platform:       "orkut",
				Campaign:       "Campanha",
			},
			validate: func(t *testing.T, snapshot *domain.Dataset) {
				assert.Equal(t, domain.PlatformUnknown, snapshot.Influencers[0].Platform)
			},
		},
		{
			name: "Nome do influenciador é obrigatório",
			entry: ManualEntry{
				Platform: "instagram",
				Campaign: "Campanha",
			},
			hasError: true,
		},
		{
			name: "Plataforma é obrigatória",
			entry: ManualEntry{
				InfluencerName: "Influenciadora",
				Campaign:       "Campanha",
			},
			hasError: true,
		},
		{
			name: "Campanha é obrigatória",
			entry: ManualEntry{
				InfluencerName: "Influenciadora",
				Platform:       "instagram",
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := store.NewSessionStore()
			service := newTestService(t, sessions)

			err := service.AddManualEntry(context.Background(), tt.entry)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrMissingEntryFields)
				assert.Empty(t, sessions.Snapshot().Influencers)
				return
			}

			require.NoError(t, err)
			tt.validate(t, sessions.Snapshot())
		})
	}
}

func TestService_AddManualEntry_AppendsToExistingSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := store.NewSessionStore()
	sessions.Replace(SeedDataset())

	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(sessions, mockDatasetRepo)

	var saved *domain.Dataset
	mockDatasetRepo.EXPECT().
		SaveDataset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dataset *domain.Dataset) error {
			saved = dataset
			return nil
		})

	before := sessions.Snapshot()

	err := service.AddManualEntry(context.Background(), ManualEntry{
		InfluencerName: "Nova Influenciadora",
		Platform:       "youtube",
		Campaign:       "Campanha Manual",
		Revenue:        100,
	})

	require.NoError(t, err)

	snapshot := sessions.Snapshot()
	assert.Len(t, snapshot.Influencers, 6)
	assert.Len(t, snapshot.Posts, 4)
	assert.Len(t, snapshot.Tracking, 4)
	assert.Len(t, snapshot.Payouts, 4)

	// O snapshot anterior permanece intacto e o novo é persistido
	assert.Len(t, before.Influencers, 5)
	assert.Same(t, snapshot, saved)
}

func TestSeedDataset(t *testing.T) {
	seed := SeedDataset()

	assert.Equal(t, domain.DatasetSourceSeed, seed.Source)
	assert.Len(t, seed.Influencers, 5)
	assert.Len(t, seed.Posts, 3)
	assert.Len(t, seed.Tracking, 3)
	assert.Len(t, seed.Payouts, 3)

	// Todos os registros do seed apontam para influenciadores conhecidos
	known := make(map[string]struct{})
	for _, influencer := range seed.Influencers {
		known[influencer.ID] = struct{}{}
	}
	for _, post := range seed.Posts {
		assert.Contains(t, known, post.InfluencerID)
	}
	for _, tracking := range seed.Tracking {
		assert.Contains(t, known, tracking.InfluencerID)
	}
	for _, payout := range seed.Payouts {
		assert.Contains(t, known, payout.InfluencerID)
	}
}
