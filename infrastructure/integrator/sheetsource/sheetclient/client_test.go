package sheetclient

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
)

func sourceFor(server *httptest.Server) config.ReportSource {
	return config.ReportSource{
		URL:            server.URL,
		Kind:           config.SourceKindHTTP,
		TimeoutSeconds: 15,
	}
}

func TestFetchMatrix(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected sourcedomain.RawMatrix
	}{
		{
			name:   "Corpo array-of-arrays vira matriz com células heterogêneas",
			status: http.StatusOK,
			body:   `[["ID","Nome"],["1","Ana"],[2,true]]`,
			expected: sourcedomain.RawMatrix{
				{"ID", "Nome"},
				{"1", "Ana"},
				{float64(2), true},
			},
		},
		{
			name:     "Corpo que não é array é tratado como sem dados, não erro",
			status:   http.StatusOK,
			body:     `{"error":"planilha em manutenção"}`,
			expected: sourcedomain.RawMatrix{},
		},
		{
			name:   "Linhas que não são arrays são descartadas em silêncio",
			status: http.StatusOK,
			body:   `[["ID","Nome"],"bogus",["1","Ana"]]`,
			expected: sourcedomain.RawMatrix{
				{"ID", "Nome"},
				{"1", "Ana"},
			},
		},
		{
			name:     "Array vazio devolve matriz vazia",
			status:   http.StatusOK,
			body:     `[]`,
			expected: sourcedomain.RawMatrix{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient()

			matrix, err := client.FetchMatrix(context.Background(), sourceFor(server))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matrix)
		})
	}
}

func TestFetchMatrix_StatusNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient()

	matrix, err := client.FetchMatrix(context.Background(), sourceFor(server))
	assert.Nil(t, matrix)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
}

func TestFetchMatrix_JSONInvalido(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["ID","Nome"`))
	}))
	defer server.Close()

	client := NewClient()

	matrix, err := client.FetchMatrix(context.Background(), sourceFor(server))
	assert.Nil(t, matrix)
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestFetchMatrix_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}))
	defer server.Close()

	client := NewClient()

	// O deadline do contexto pai vence antes do timeout da fonte
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	matrix, err := client.FetchMatrix(ctx, sourceFor(server))
	assert.Nil(t, matrix)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
