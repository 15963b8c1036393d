package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

func sheetsClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	service, err := sheets.NewService(
		context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return &Client{service: service}
}

func TestFetchMatrix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Effectif!A:B","majorDimension":"ROWS","values":[["ID","Nome"],["1","Ana"]]}`))
	}))
	defer server.Close()

	client := sheetsClient(t, server)

	matrix, err := client.FetchMatrix(context.Background(), config.ReportSource{
		Kind:           config.SourceKindGoogleSheet,
		SpreadsheetID:  "sheet-id",
		Range:          "Effectif!A:B",
		TimeoutSeconds: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, sourcedomain.RawMatrix{
		{"ID", "Nome"},
		{"1", "Ana"},
	}, matrix)
}

func TestFetchMatrix_SemConfiguracao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := sheetsClient(t, server)

	matrix, err := client.FetchMatrix(context.Background(), config.ReportSource{
		Kind:           config.SourceKindGoogleSheet,
		TimeoutSeconds: 15,
	})
	assert.Nil(t, matrix)
	assert.ErrorIs(t, err, config.ErrSourceNotConfigured)
}

func TestFetchMatrix_TimeoutDaFonte(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := sheetsClient(t, server)

	start := time.Now()
	matrix, err := client.FetchMatrix(context.Background(), config.ReportSource{
		Kind:           config.SourceKindGoogleSheet,
		SpreadsheetID:  "sheet-id",
		Range:          "Effectif!A:B",
		TimeoutSeconds: 1,
	})
	elapsed := time.Since(start)

	assert.Nil(t, matrix)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// A leitura precisa ser interrompida pelo timeout da fonte, não pelo
	// servidor terminar de responder
	assert.Less(t, elapsed, 3*time.Second)
}
