package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/influencer-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaign/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(sessions, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/performance",
			Method:      http.MethodGet,
			Handler:     GetInfluencerPerformances(sessions, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/performance/top",
			Method:      http.MethodGet,
			Handler:     GetTopPerformers(sessions, analyzer, ranker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/influencers/performance/poor",
			Method:      http.MethodGet,
			Handler:     GetPoorPerformers(sessions, analyzer, ranker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/personas/best",
			Method:      http.MethodGet,
			Handler:     GetBestPersonas(sessions, analyzer, ranker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dataset(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ingester ingesting.Ingester,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset/summary",
			Method:      http.MethodGet,
			Handler:     GetDatasetSummary(sessions, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dataset/upload/:collection",
			Method:      http.MethodPost,
			Handler:     UploadDatasetCSV(ingester),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/dataset/manual",
			Method:      http.MethodPost,
			Handler:     AddManualEntry(ingester),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Exports(
	sessions *store.SessionStore,
	analyzer analyzing.Analyzer,
	ranker ranking.Ranker,
	reporter reporting.Reporter,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/:report",
			Method:      http.MethodGet,
			Handler:     ExportReport(sessions, analyzer, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/report",
			Method:      http.MethodGet,
			Handler:     GetTextReport(sessions, analyzer, ranker, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func RankingSnapshot(repo repository.RankingSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers/ranking/monthly",
			Method:      http.MethodGet,
			Handler:     GetRankingSnapshot(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
