package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/sheetclient"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/rh-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/rh-dashboard-api/pkg/log"
)

// GetReport serve o relatório pedido na rota com os filtros da query string
func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		reportType, err := domain.ParseReportType(rawType)
		if err != nil {
			logger.WithField("report", rawType).Warn("reports: tipo de relatório desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrUnknownReport, err.Error(), nil)
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"report": reportType,
				"error":  err.Error(),
			}).Warn("reports: filtro não suportado")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"report":  reportType,
			"filters": filters,
		}).Info("reports: montando relatório")

		var report interface{}
		switch reportType {
		case domain.ReportHeadcount:
			report, err = service.Headcount(r.Context(), filters)
		case domain.ReportDepartures:
			report, err = service.Departures(r.Context(), filters)
		case domain.ReportRecruitment:
			report, err = service.Recruitment(r.Context(), filters)
		}

		if err != nil {
			writeReportError(w, r, reportType, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"report": reportType,
				"error":  err.Error(),
			}).Error("reports: erro ao codificar a resposta")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}

// parseFilters extrai os filtros de igualdade da query string. Só os campos
// da lista fixa são aceitos; qualquer outro parâmetro é rejeitado para que um
// erro de digitação não vire silenciosamente um relatório sem filtro.
func parseFilters(r *http.Request) (map[string]string, error) {
	query := r.URL.Query()
	if len(query) == 0 {
		return nil, nil
	}

	allowed := make(map[string]bool, len(domain.FilterFields))
	for _, field := range domain.FilterFields {
		allowed[field] = true
	}

	filters := make(map[string]string)
	for key, values := range query {
		if !allowed[key] {
			return nil, errors.New("filtro não suportado: " + key)
		}

		if len(values) == 0 || values[0] == "" {
			continue
		}

		filters[key] = values[0]
	}

	if len(filters) == 0 {
		return nil, nil
	}

	return filters, nil
}

// writeReportError classifica a falha de busca e responde com o código da
// taxonomia de erros de fonte. Tudo que não é falha de fonte cai no erro
// interno genérico.
func writeReportError(w http.ResponseWriter, r *http.Request, reportType domain.ReportType, err error) {
	logger := log.ForContext(r.Context())

	code := sourceErrorCode(err)

	logger.WithFields(log.Fields{
		"report": reportType,
		"code":   code,
		"error":  err.Error(),
	}).Error("reports: falha ao montar relatório")

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func sourceErrorCode(err error) string {
	var statusErr *sheetclient.StatusError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrSourceTimeout
	case errors.As(err, &statusErr):
		return apiErrors.ErrSourceStatus
	case errors.Is(err, sheetclient.ErrMalformedBody):
		return apiErrors.ErrSourceMalformed
	case errors.Is(err, config.ErrSourceNotConfigured):
		return apiErrors.ErrSourceConfig
	}

	return apiErrors.ErrInternalServer
}
