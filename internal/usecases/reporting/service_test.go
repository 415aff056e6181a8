package reporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

func TestService_PerformanceCSV(t *testing.T) {
	service := NewService()

	performances := []*domain.InfluencerPerformance{
		{
			Influencer: &domain.Influencer{
				ID:       "1",
				Name:     "Fitness Guru Raj",
				Category: domain.CategoryFitness,
				Platform: domain.PlatformInstagram,
			},
			Revenue:     4500,
			Orders:      3,
			Reach:       45000,
			Engagements: 3045,
			Payout:      25000,
			ROI:         -82,
			Posts:       1,
		},
		{
			Influencer: &domain.Influencer{
				ID:       "2",
				Name:     "Wellness With Priya",
				Category: domain.CategoryWellness,
				Platform: domain.PlatformYoutube,
			},
			Revenue: 2800,
			Payout:  2700,
			ROI:     3.7,
		},
	}

	output, err := service.PerformanceCSV(performances)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(output)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"influencer_id", "name", "category", "platform",
		"revenue", "orders", "reach", "engagements", "payout", "roi", "posts",
	}, records[0])

	assert.Equal(t, []string{
		"1", "Fitness Guru Raj", "fitness", "instagram",
		"4500.00", "3", "45000", "3045", "25000.00", "-82.00", "1",
	}, records[1])

	assert.Equal(t, "2", records[2][0])
	assert.Equal(t, "2800.00", records[2][4])
	assert.Equal(t, "3.70", records[2][9])
}

func TestService_PerformanceCSV_Empty(t *testing.T) {
	service := NewService()

	output, err := service.PerformanceCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(output)).ReadAll()
	require.NoError(t, err)

	// Somente o cabeçalho
	assert.Len(t, records, 1)
}

func TestService_CampaignSummaryCSV(t *testing.T) {
	service := NewService()

	metrics := &domain.CampaignMetrics{
		TotalRevenue:      9100,
		TotalSpend:        42700,
		ROAS:              0.2131,
		IncrementalROAS:   0.1811,
		TotalOrders:       10,
		AverageOrderValue: 910,
	}

	output, err := service.CampaignSummaryCSV(metrics)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(output)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, []string{"metric", "value"}, records[0])
	assert.Equal(t, []string{"total_revenue", "9100.00"}, records[1])
	assert.Equal(t, []string{"total_spend", "42700.00"}, records[2])
	assert.Equal(t, []string{"roas", "0.21"}, records[3])
	assert.Equal(t, []string{"incremental_roas", "0.18"}, records[4])
	assert.Equal(t, []string{"total_orders", "10"}, records[5])
	assert.Equal(t, []string{"average_order_value", "910.00"}, records[6])
}

func TestService_TextReport(t *testing.T) {
	service := NewService()

	metrics := &domain.CampaignMetrics{
		TotalRevenue:      9100,
		TotalSpend:        42700,
		ROAS:              0.21,
		IncrementalROAS:   0.18,
		TotalOrders:       10,
		AverageOrderValue: 910,
	}

	topPerformers := []*domain.InfluencerPerformance{
		{
			Influencer: &domain.Influencer{ID: "1", Name: "Fitness Guru Raj"},
			Revenue:    4500,
			ROI:        -82,
		},
		{
			Influencer: &domain.Influencer{ID: "2", Name: "Wellness With Priya"},
			Revenue:    2800,
			ROI:        3.7,
		},
	}

	personas := []*domain.PersonaAggregate{
		{Category: domain.CategoryWellness, AvgROI: 3.7, AvgReach: 78000, Count: 1},
		{Category: domain.CategoryFitness, AvgROI: -82, AvgReach: 45000, Count: 1},
	}

	report := service.TextReport(metrics, topPerformers, personas)

	assert.Contains(t, report, "Campaign Analytics Report")
	assert.Contains(t, report, "Campaign Overview")
	assert.Contains(t, report, "Total Revenue: 9100.00")
	assert.Contains(t, report, "Total Spend: 42700.00")
	assert.Contains(t, report, "ROAS: 0.21x")
	assert.Contains(t, report, "Incremental ROAS: 0.18x")
	assert.Contains(t, report, "Total Orders: 10")
	assert.Contains(t, report, "Average Order Value: 910.00")

	assert.Contains(t, report, "Top Performers")
	assert.Contains(t, report, "1. Fitness Guru Raj - revenue 4500.00, ROI -82.0%")
	assert.Contains(t, report, "2. Wellness With Priya - revenue 2800.00, ROI 3.7%")

	assert.Contains(t, report, "Best Personas")
	assert.Contains(t, report, "wellness - avg ROI 3.7%, avg reach 78000 (1 influencers)")

	// A seção de personas respeita a ordem recebida
	assert.Less(
		t,
		strings.Index(report, "wellness -"),
		strings.Index(report, "fitness -"),
	)
}

func TestService_TextReport_EmptySections(t *testing.T) {
	service := NewService()

	report := service.TextReport(&domain.CampaignMetrics{}, nil, nil)

	assert.Contains(t, report, "Campaign Overview")
	assert.Contains(t, report, "Top Performers")
	assert.Contains(t, report, "Best Personas")
	assert.Contains(t, report, "Total Revenue: 0.00")
}
