package handler

import (
	"net/http"

	"github.com/vfg2006/earnings-estimator-api/internal/api/handler/router"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/widget"
	"github.com/vfg2006/earnings-estimator-api/pkg/middleware"
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

func Form(service estimating.Estimator, defaults domain.EarningsInput) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RenderForm(service, defaults),
		},
	}
}

func Estimates(service estimating.Estimator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/estimates",
			Method:  http.MethodPost,
			Handler: CreateEstimate(service),
		},
		{
			Path:    "/v1/disclaimer",
			Method:  http.MethodGet,
			Handler: GetDisclaimer(service),
		},
	}
}

func Widgets(service widget.WidgetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/widgets",
			Method:  http.MethodPost,
			Handler: MountWidget(service),
		},
		{
			Path:    "/v1/widgets/:id",
			Method:  http.MethodGet,
			Handler: GetWidget(service),
		},
		{
			Path:    "/v1/widgets/:id",
			Method:  http.MethodDelete,
			Handler: UnmountWidget(service),
		},
		{
			Path:    "/v1/widgets/:id/fields/:field",
			Method:  http.MethodPut,
			Handler: UpdateWidgetField(service),
		},
		{
			Path:    "/v1/widgets/:id/disclaimer/:action",
			Method:  http.MethodPost,
			Handler: ChangeDisclaimer(service),
		},
	}
}

func CronJobs(services CronJobServices, authSecret string) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(authSecret)}

	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
