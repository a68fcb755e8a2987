package handler

import (
	"net/http"

	"github.com/techhr/ad-manager-api/internal/api/handler/router"
	"github.com/techhr/ad-manager-api/internal/usecases/advertising"
	"github.com/techhr/ad-manager-api/internal/usecases/authenticating"
	"github.com/techhr/ad-manager-api/internal/usecases/supporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/auth/language",
			Method:  http.MethodPut,
			Handler: UpdateLanguage(service),
		},
	}
}

// Ads retorna as rotas de anúncios. As estatísticas ficam em /v1/dashboard
// porque o httprouter não aceita segmento estático concorrendo com :id.
func Ads(service advertising.AdService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodPost,
			Handler: CreateAd(service),
		},
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
		{
			Path:    "/v1/ads/:id",
			Method:  http.MethodGet,
			Handler: GetAd(service),
		},
		{
			Path:    "/v1/ads/:id",
			Method:  http.MethodPut,
			Handler: UpdateAd(service),
		},
		{
			Path:    "/v1/ads/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAd(service),
		},
		{
			Path:    "/v1/ads/:id/duplicate",
			Method:  http.MethodPost,
			Handler: DuplicateAd(service),
		},
	}
}

func Support(service supporting.Supporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/support",
			Method:  http.MethodGet,
			Handler: ListFAQs(service),
		},
		{
			Path:    "/v1/support/frequent",
			Method:  http.MethodGet,
			Handler: FrequentFAQs(service),
		},
		{
			Path:    "/v1/support/search",
			Method:  http.MethodGet,
			Handler: SearchFAQs(service),
		},
		{
			Path:    "/v1/support/faqs/:id/views",
			Method:  http.MethodPut,
			Handler: RegisterFAQView(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
