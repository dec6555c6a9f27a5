package handler

import (
	"net/http"

	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/funnel-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
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
	}
}

func Records(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: ListRecords(service),
		},
		{
			Path:    "/v1/records/summary",
			Method:  http.MethodGet,
			Handler: GetRecordsSummary(service),
		},
		{
			Path:    "/v1/records/:date",
			Method:  http.MethodPut,
			Handler: UpsertManualEntry(service),
		},
	}
}

func Imports(importer importing.Importer, reporter reporting.Reporter, sheetsService sheets.SheetsIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/import/paste",
			Method:  http.MethodPost,
			Handler: ImportPaste(importer, reporter),
		},
		{
			Path:    "/v1/import/csv",
			Method:  http.MethodPost,
			Handler: ImportCSV(importer, reporter),
		},
		{
			Path:    "/v1/import/xlsx",
			Method:  http.MethodPost,
			Handler: ImportXLSX(importer, reporter),
		},
		{
			Path:    "/v1/import/sheet",
			Method:  http.MethodPost,
			Handler: ImportSheet(sheetsService, reporter),
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
