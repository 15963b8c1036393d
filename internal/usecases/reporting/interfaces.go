package reporting

import (
	"context"

	"github.com/vfg2006/rh-dashboard-api/internal/domain"
)

// Reporter é a interface completa do serviço de relatórios do dashboard
type Reporter interface {
	// Headcount monta o relatório de efetivo com os filtros aplicados
	Headcount(ctx context.Context, filters map[string]string) (*domain.HeadcountReport, error)

	// Departures monta o relatório de desligamentos com os filtros aplicados
	Departures(ctx context.Context, filters map[string]string) (*domain.DeparturesReport, error)

	// Recruitment monta o relatório de recrutamento com os filtros aplicados
	Recruitment(ctx context.Context, filters map[string]string) (*domain.RecruitmentReport, error)

	// Table devolve a visão tabular de qualquer relatório, usada na exportação
	Table(ctx context.Context, reportType domain.ReportType, filters map[string]string) (*domain.ReportTable, error)
}
