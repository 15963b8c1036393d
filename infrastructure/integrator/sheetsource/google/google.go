// Package google implementa a fonte de matriz sobre a API do Google Sheets,
// para os relatórios cuja planilha é lida direto do Sheets em vez de um
// endpoint JSON intermediário.
package google

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

// NewClient cria o cliente do Sheets. Com CredentialsFile vazio a
// autenticação cai no Application Default Credentials do ambiente.
func NewClient(ctx context.Context, cfg config.Google) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}

	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Sheets")
	}

	return &Client{service: service}, nil
}

// FetchMatrix lê o intervalo configurado e devolve a matriz de valores tal
// qual a API entrega: células heterogêneas, primeira linha de cabeçalho.
// A leitura respeita o timeout configurado da fonte, como no cliente HTTP.
func (c *Client) FetchMatrix(ctx context.Context, source config.ReportSource) (sourcedomain.RawMatrix, error) {
	if source.SpreadsheetID == "" || source.Range == "" {
		return nil, fmt.Errorf("%w: fonte do Sheets sem spreadsheet_id ou range", config.ErrSourceNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(source.TimeoutSeconds)*time.Second)
	defer cancel()

	resp, err := c.service.Spreadsheets.Values.
		Get(source.SpreadsheetID, source.Range).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler valores do Sheets")
	}

	matrix := make(sourcedomain.RawMatrix, 0, len(resp.Values))
	for _, row := range resp.Values {
		matrix = append(matrix, row)
	}

	return matrix, nil
}
