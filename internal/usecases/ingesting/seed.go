package ingesting

import (
	"time"

	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

// SeedDataset retorna o conjunto de dados de demonstração carregado quando a
// sessão começa sem persistência disponível
func SeedDataset() *domain.Dataset {
	return &domain.Dataset{
		Source: domain.DatasetSourceSeed,
		Influencers: []*domain.Influencer{
			{
				ID:             "1",
				Name:           "Fitness Guru Raj",
				Category:       domain.CategoryFitness,
				Gender:         domain.GenderMale,
				FollowerCount:  250000,
				Platform:       domain.PlatformInstagram,
				EngagementRate: floatPtr(4.2),
			},
			{
				ID:             "2",
				Name:           "Wellness With Priya",
				Category:       domain.CategoryWellness,
				Gender:         domain.GenderFemale,
				FollowerCount:  180000,
				Platform:       domain.PlatformYoutube,
				EngagementRate: floatPtr(6.1),
			},
			{
				ID:             "3",
				Name:           "Nutrition Expert Arjun",
				Category:       domain.CategoryNutrition,
				Gender:         domain.GenderMale,
				FollowerCount:  120000,
				Platform:       domain.PlatformInstagram,
				EngagementRate: floatPtr(5.8),
			},
			{
				ID:             "4",
				Name:           "Lifestyle Maya",
				Category:       domain.CategoryLifestyle,
				Gender:         domain.GenderFemale,
				FollowerCount:  320000,
				Platform:       domain.PlatformTiktok,
				EngagementRate: floatPtr(7.2),
			},
			{
				ID:             "5",
				Name:           "Sports Champion Dev",
				Category:       domain.CategorySports,
				Gender:         domain.GenderMale,
				FollowerCount:  95000,
				Platform:       domain.PlatformYoutube,
				EngagementRate: floatPtr(4.9),
			},
		},
		Posts: []*domain.Post{
			{
				ID:           "1",
				InfluencerID: "1",
				Platform:     domain.PlatformInstagram,
				Date:         seedDate("2024-01-15"),
				URL:          "https://instagram.com/p/example1",
				Caption:      "Transform your workout with MuscleBlaze protein! 💪 #fitness #protein",
				Reach:        45000,
				Likes:        2800,
				Comments:     156,
				Shares:       intPtr(89),
			},
			{
				ID:           "2",
				InfluencerID: "2",
				Platform:     domain.PlatformYoutube,
				Date:         seedDate("2024-01-18"),
				URL:          "https://youtube.com/watch?v=example2",
				Caption:      "My morning routine with HKVitals supplements - complete review!",
				Reach:        78000,
				Likes:        3200,
				Comments:     287,
				Shares:       intPtr(145),
			},
			{
				ID:           "3",
				InfluencerID: "3",
				Platform:     domain.PlatformInstagram,
				Date:         seedDate("2024-01-20"),
				URL:          "https://instagram.com/p/example3",
				Caption:      "Why Gritzo is perfect for kids nutrition - pediatrician approved!",
				Reach:        32000,
				Likes:        1900,
				Comments:     98,
				Shares:       intPtr(67),
			},
		},
		Tracking: []*domain.TrackingData{
			{
				ID:           "1",
				Source:       "instagram",
				Campaign:     "Winter Fitness 2024",
				InfluencerID: "1",
				UserID:       "user_001",
				Product:      "Whey Protein Gold",
				Brand:        domain.BrandMuscleBlaze,
				Date:         seedDate("2024-01-15"),
				Orders:       3,
				Revenue:      4500,
			},
			{
				ID:           "2",
				Source:       "youtube",
				Campaign:     "Wellness Journey",
				InfluencerID: "2",
				UserID:       "user_002",
				Product:      "Multivitamin Pro",
				Brand:        domain.BrandHKVitals,
				Date:         seedDate("2024-01-18"),
				Orders:       5,
				Revenue:      2800,
			},
			{
				ID:           "3",
				Source:       "instagram",
				Campaign:     "Kids Nutrition",
				InfluencerID: "3",
				UserID:       "user_003",
				Product:      "Kids Growth Formula",
				Brand:        domain.BrandGritzo,
				Date:         seedDate("2024-01-20"),
				Orders:       2,
				Revenue:      1800,
			},
		},
		Payouts: []*domain.Payout{
			{
				ID:           "1",
				InfluencerID: "1",
				Basis:        domain.PayoutBasisPost,
				Rate:         25000,
				Orders:       12,
				TotalPayout:  25000,
				Campaign:     "Winter Fitness 2024",
				Date:         seedDate("2024-01-31"),
			},
			{
				ID:           "2",
				InfluencerID: "2",
				Basis:        domain.PayoutBasisOrder,
				Rate:         150,
				Orders:       18,
				TotalPayout:  2700,
				Campaign:     "Wellness Journey",
				Date:         seedDate("2024-01-31"),
			},
			{
				ID:           "3",
				InfluencerID: "3",
				Basis:        domain.PayoutBasisPost,
				Rate:         15000,
				Orders:       8,
				TotalPayout:  15000,
				Campaign:     "Kids Nutrition",
				Date:         seedDate("2024-01-31"),
			},
		},
	}
}

func seedDate(value string) time.Time {
	date, _ := time.Parse(time.DateOnly, value)
	return date
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}
