package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/sheetclient"
	"github.com/vfg2006/rh-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/rh-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func reportsRouter(service *mocks.MockReporter) http.Handler {
	rt := router.New(router.WithRoutes(Reports(service)...))
	return rt
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestGetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		Headcount(gomock.Any(), map[string]string{"department": "Vendas"}).
		Return(&domain.HeadcountReport{
			Meta: domain.ReportMeta{Type: domain.ReportHeadcount, Rows: 2},
		}, nil)

	recorder := httptest.NewRecorder()
	// Parâmetro de filtro vazio é ignorado, não rejeitado
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/headcount?department=Vendas&sex=", nil)

	reportsRouter(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var report domain.HeadcountReport
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&report))
	assert.Equal(t, domain.ReportHeadcount, report.Meta.Type)
	assert.Equal(t, 2, report.Meta.Rows)
}

func TestGetReport_TipoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/payroll", nil)

	reportsRouter(mocks.NewMockReporter(ctrl)).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrUnknownReport, decodeAPIError(t, recorder).Code)
}

func TestGetReport_FiltroNaoSuportado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := httptest.NewRecorder()
	// Erro de digitação no nome do filtro não pode virar relatório sem filtro
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/headcount?departament=Vendas", nil)

	reportsRouter(mocks.NewMockReporter(ctrl)).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidFilter, decodeAPIError(t, recorder).Code)
}

func TestGetReport_ErrosDeFonte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Timeout da fonte vira SRC_001 com 504",
			err:            fmt.Errorf("erro ao executar a requisição: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   apiErrors.ErrSourceTimeout,
		},
		{
			name:           "Status não-2xx da fonte vira SRC_002 com 502",
			err:            &sheetclient.StatusError{Status: "500 Internal Server Error", Code: 500},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrSourceStatus,
		},
		{
			name:           "Corpo não-JSON da fonte vira SRC_003 com 502",
			err:            fmt.Errorf("%w: unexpected end of input", sheetclient.ErrMalformedBody),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrSourceMalformed,
		},
		{
			name:           "Fonte sem configuração vira SRC_004 com 503",
			err:            fmt.Errorf("%w: fonte departures sem URL", config.ErrSourceNotConfigured),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   apiErrors.ErrSourceConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockReporter(ctrl)
			service.EXPECT().
				Departures(gomock.Any(), gomock.Nil()).
				Return(nil, tt.err)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/v1/reports/departures", nil)

			reportsRouter(service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, recorder).Code)
		})
	}
}

func TestExportReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().
		Table(gomock.Any(), domain.ReportDepartures, gomock.Nil()).
		Return(&domain.ReportTable{
			Type:    domain.ReportDepartures,
			Headers: []string{"Mês", "QZ", "Desligamentos"},
			Rows: [][]string{
				{"1", "Q1", "3"},
				{"2", "Q1", "2"},
			},
		}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/departures/export", nil)

	reportsRouter(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		recorder.Header().Get("Content-Type"),
	)
	assert.Equal(t, "attachment; filename=departures.xlsx", recorder.Header().Get("Content-Disposition"))
	assert.NotZero(t, recorder.Body.Len())
}

func TestExportReport_TipoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/reports/payroll/export", nil)

	reportsRouter(mocks.NewMockReporter(ctrl)).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrUnknownReport, decodeAPIError(t, recorder).Code)
}
