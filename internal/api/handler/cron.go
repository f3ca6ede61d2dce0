package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/earnings-estimator-api/internal/scheduler"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

const (
	CronJobTypeWidgetSweep = "widget-sweep"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços agendados que podem ser executados manualmente
type CronJobServices struct {
	WidgetSweepService *scheduler.WidgetSweepService
}

// RunCronJob executa manualmente uma cron job
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("cron: execução manual solicitada")

		switch cronType {
		case CronJobTypeWidgetSweep, CronJobTypeAll:
			if services.WidgetSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.WidgetSweepService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: widget-sweep, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.WidgetSweepService != nil {
			status[CronJobTypeWidgetSweep] = services.WidgetSweepService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
