package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/internal/scheduler"
	"github.com/vfg2006/funnel-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/funnel-metrics-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSheet = "sheet"
	CronJobTypeAll   = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SheetSyncService *scheduler.SheetSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSheet, CronJobTypeAll:
			if services.SheetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização da planilha não disponível", nil)
				return
			}
			if !services.SheetSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização da planilha já em andamento", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sheet, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"sheet": services.SheetSyncService.GetStatus(),
		}

		logrus.Debug(utils.PrettyJson(status))

		json.NewEncoder(w).Encode(status)
	}
}
