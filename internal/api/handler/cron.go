package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/techhr/ad-manager-api/internal/scheduler"
	"github.com/techhr/ad-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que pode ser executada
const (
	CronJobTypeDashboardSnapshot = "dashboard-snapshot"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	DashboardSnapshotService *scheduler.DashboardSnapshotService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDashboardSnapshot:
			if services.DashboardSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot do dashboard não disponível", nil)
				return
			}
			services.DashboardSnapshotService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-snapshot", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de uma cron job
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeDashboardSnapshot:
			if services.DashboardSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot do dashboard não disponível", nil)
				return
			}
			writeJSON(w, http.StatusOK, services.DashboardSnapshotService.Status())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-snapshot", nil)
		}
	}
}
