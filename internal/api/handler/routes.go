package handler

import (
	"net/http"

	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu"
	"github.com/vfg2006/leadssu-webmaster/internal/api/handler/router"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/authenticating"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/reporting"
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
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Leadssu(service leadssu.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leadssu/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/v1/leadssu/balance",
			Method:  http.MethodGet,
			Handler: GetBalance(service),
		},
		{
			Path:    "/v1/leadssu/channels",
			Method:  http.MethodGet,
			Handler: GetTrafficChannels(service),
		},
		{
			Path:    "/v1/leadssu/offers",
			Method:  http.MethodGet,
			Handler: GetOffers(service),
		},
		{
			Path:    "/v1/leadssu/offers/:id/link",
			Method:  http.MethodGet,
			Handler: GetOfferLink(service),
		},
		{
			Path:    "/v1/leadssu/leads",
			Method:  http.MethodGet,
			Handler: GetLeads(service),
		},
		{
			Path:    "/v1/leadssu/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(service),
		},
		{
			Path:    "/v1/leadssu/commissions",
			Method:  http.MethodGet,
			Handler: GetCommissions(service),
		},
	}
}

func Reporting(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: GetStoredLeads(service),
		},
		{
			Path:    "/v1/commissions/history",
			Method:  http.MethodGet,
			Handler: GetCommissionHistory(service),
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
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
