package sheetclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedBody indica um corpo de resposta que não é JSON válido.
// Diferente do corpo não-array, isto é falha de fetch, não "sem dados".
var ErrMalformedBody = fmt.Errorf("corpo da resposta não é JSON válido")

// StatusError indica uma resposta com status fora da faixa 2xx.
type StatusError struct {
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

// Client busca a matriz de uma fonte HTTP que devolve JSON array-of-arrays.
type Client interface {
	FetchMatrix(ctx context.Context, source config.ReportSource) (sourcedomain.RawMatrix, error)
}

type SheetClient struct {
	httpClient *http.Client
}

// NewClient cria uma nova instância do cliente de planilhas HTTP. O timeout
// por requisição vem da configuração de cada fonte, não do http.Client.
func NewClient() Client {
	return &SheetClient{
		httpClient: &http.Client{},
	}
}

// FetchMatrix executa o GET na fonte respeitando o timeout configurado.
// Status não-2xx é falha; corpo que não é um array JSON é falha; o corpo
// vazio ou somente com cabeçalho é "sem dados" e fica a cargo do chamador.
func (c *SheetClient) FetchMatrix(ctx context.Context, source config.ReportSource) (sourcedomain.RawMatrix, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(source.TimeoutSeconds)*time.Second)
	defer cancel()

	// Validar a URL da fonte antes de criar a requisição.
	endpoint, err := url.Parse(source.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL da fonte")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeout estourado ou conexão abortada: a tentativa em andamento é
		// cancelada e tratada como falha, sem dado parcial.
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	// JSON inválido é falha de fetch; JSON válido que não é um array é
	// tratado como "sem dados", não como erro.
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	rows, ok := payload.([]interface{})
	if !ok {
		return sourcedomain.RawMatrix{}, nil
	}

	matrix := make(sourcedomain.RawMatrix, 0, len(rows))
	for _, row := range rows {
		cells, ok := row.([]interface{})
		if !ok {
			// Linha que não é array não é tabular; descartada em silêncio.
			continue
		}

		matrix = append(matrix, cells)
	}

	return matrix, nil
}
