package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/scheduler"
	"github.com/vfg2006/rh-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/rh-dashboard-api/pkg/log"
)

// CronJobTypeAll sincroniza todos os relatórios de uma vez
const CronJobTypeAll = "all"

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	SheetSyncService *scheduler.SheetSyncService
}

// RunCronJob dispara manualmente a sincronização de planilha de um relatório
// (ou de todos, com o tipo "all")
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if services.SheetSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		var reportTypes []domain.ReportType
		if cronType == CronJobTypeAll {
			reportTypes = domain.ReportTypes
		} else {
			reportType, err := domain.ParseReportType(cronType)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrUnknownReport, err.Error(), nil)
				return
			}

			reportTypes = []domain.ReportType{reportType}
		}

		results := make(map[string]string, len(reportTypes))
		failed := false
		for _, reportType := range reportTypes {
			if err := services.SheetSyncService.RunNow(r.Context(), reportType); err != nil {
				failed = true
				results[string(reportType)] = err.Error()
				continue
			}

			results[string(reportType)] = "ok"
		}

		status := http.StatusOK
		if failed {
			status = http.StatusBadGateway
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": results,
		})
	})
}

// GetCronStatus retorna o estado corrente do agendador de sincronização
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.SheetSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(services.SheetSyncService.Status())
	})
}
