// Package sheetsource integra o dashboard com as fontes de planilha. Cada
// relatório aponta para uma fonte própria: um endpoint HTTP que devolve a
// matriz em JSON ou um intervalo lido da API do Google Sheets.
package sheetsource

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/google"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/sheetclient"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
)

// Source é o contrato consumido pelo usecase de relatórios: uma busca única
// por carga de dados, limitada pelo timeout da fonte.
type Source interface {
	FetchReport(ctx context.Context, reportType domain.ReportType) (sourcedomain.RawMatrix, error)
}

// Integrator resolve a fonte configurada de cada relatório e delega ao
// cliente correspondente.
type Integrator struct {
	cfg          *config.Config
	sheetClient  sheetclient.Client
	googleClient *google.Client
}

// New cria o integrador de fontes. O cliente do Google é opcional: só é
// exigido se alguma fonte estiver configurada com o kind google_sheet.
func New(cfg *config.Config, sheetClient sheetclient.Client, googleClient *google.Client) *Integrator {
	return &Integrator{
		cfg:          cfg,
		sheetClient:  sheetClient,
		googleClient: googleClient,
	}
}

// FetchReport busca a matriz bruta do relatório na fonte configurada.
func (i *Integrator) FetchReport(ctx context.Context, reportType domain.ReportType) (sourcedomain.RawMatrix, error) {
	source, err := i.cfg.SourceFor(string(reportType))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report": reportType,
		"kind":   source.Kind,
	}).Debug("Buscando matriz da fonte do relatório")

	switch source.Kind {
	case config.SourceKindHTTP:
		if source.URL == "" {
			return nil, fmt.Errorf("%w: fonte %s sem URL", config.ErrSourceNotConfigured, reportType)
		}

		return i.sheetClient.FetchMatrix(ctx, source)
	case config.SourceKindGoogleSheet:
		if i.googleClient == nil {
			return nil, fmt.Errorf("%w: fonte %s exige o cliente do Sheets", config.ErrSourceNotConfigured, reportType)
		}

		return i.googleClient.FetchMatrix(ctx, source)
	}

	return nil, fmt.Errorf("%w: kind desconhecido %q", config.ErrSourceNotConfigured, source.Kind)
}
