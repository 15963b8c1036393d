package reporting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/pkg/tabular"
	"github.com/vfg2006/rh-dashboard-api/pkg/utils"
)

// Service implementa Reporter sobre as fontes de planilha. Todo o conjunto de
// registros é reconstruído a cada chamada: não há atualização incremental nem
// estado entre requisições além do cache opcional de snapshots.
type Service struct {
	cfg                *config.Config
	source             sheetsource.Source
	snapshotRepository repository.SnapshotRepository
	useCache           bool
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(cfg *config.Config, source sheetsource.Source) Reporter {
	return &Service{
		cfg:    cfg,
		source: source,
	}
}

// WithCache habilita o cache de snapshots no Postgres. Com o cache ativo, a
// matriz vigente dentro do TTL evita a ida à fonte; fora do TTL a busca é ao
// vivo e o resultado novo é gravado com o próximo token de sincronização.
func (s *Service) WithCache(snapshotRepo repository.SnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// Headcount monta o relatório de efetivo
func (s *Service) Headcount(ctx context.Context, filters map[string]string) (*domain.HeadcountReport, error) {
	records, meta, err := s.loadRecords(ctx, domain.ReportHeadcount, filters)
	if err != nil {
		return nil, err
	}

	return &domain.HeadcountReport{
		Meta:           meta,
		ByDepartment:   tabular.CountBy(records, tabular.FieldKey("department")),
		ByContractType: tabular.CountBy(records, tabular.FieldKey("contract_type")),
		ByStatus:       tabular.CountBy(records, tabular.FieldKey("status")),
		Employees:      domain.EmployeesFromRecords(records),
	}, nil
}

// Departures monta o relatório de desligamentos
func (s *Service) Departures(ctx context.Context, filters map[string]string) (*domain.DeparturesReport, error) {
	records, meta, err := s.loadRecords(ctx, domain.ReportDepartures, filters)
	if err != nil {
		return nil, err
	}

	series := tabular.MonthlySeries(records, "month", "departures", tabular.FieldKey("qz"))

	return &domain.DeparturesReport{
		Meta:         meta,
		ByDepartment: tabular.SumBy(records, "departures", tabular.FieldKey("department")),
		ByQZ:         tabular.SumBy(records, "departures", tabular.FieldKey("qz")),
		AveragePerQZ: tabular.AveragePerOccurrence(records, "month", "departures", tabular.FieldKey("qz")),
		Series:       series,
		Groups:       tabular.GroupRecords(records, domain.DeparturesSortKeys),
		Summary:      roundedSummary(series),
	}, nil
}

// Recruitment monta o relatório de recrutamento
func (s *Service) Recruitment(ctx context.Context, filters map[string]string) (*domain.RecruitmentReport, error) {
	records, meta, err := s.loadRecords(ctx, domain.ReportRecruitment, filters)
	if err != nil {
		return nil, err
	}

	series := tabular.MonthlySeries(records, "month", "hires", tabular.FieldKey("department"))

	return &domain.RecruitmentReport{
		Meta:         meta,
		ByDepartment: tabular.SumBy(records, "hires", tabular.FieldKey("department")),
		ByPosition:   tabular.SumBy(records, "hires", tabular.FieldKey("position")),
		Series:       series,
		Groups:       tabular.GroupRecords(records, domain.RecruitmentSortKeys),
		Summary:      roundedSummary(series),
	}, nil
}

// Table devolve a visão tabular do relatório, na ordem total de apresentação
func (s *Service) Table(ctx context.Context, reportType domain.ReportType, filters map[string]string) (*domain.ReportTable, error) {
	records, _, err := s.loadRecords(ctx, reportType, filters)
	if err != nil {
		return nil, err
	}

	table := &domain.ReportTable{Type: reportType}

	switch reportType {
	case domain.ReportHeadcount:
		table.Headers = []string{"ID", "Nome", "Departamento", "Cargo", "Contrato", "Status"}
		for _, record := range records {
			table.Rows = append(table.Rows, []string{
				record.Get("id"),
				record.Get("name"),
				record.Get("department"),
				record.Get("position"),
				record.Get("contract_type"),
				record.Get("status"),
			})
		}
	case domain.ReportDepartures:
		table.Headers = []string{"Mês", "QZ", "Sexo", "Departamento", "Contrato", "Desligamentos"}
		for _, record := range tabular.SortRecords(records, domain.DeparturesSortKeys) {
			table.Rows = append(table.Rows, []string{
				record.Get("month"),
				record.Get("qz"),
				record.Get("sex"),
				record.Get("department"),
				record.Get("contract_type"),
				strconv.Itoa(record.Int("departures")),
			})
		}
	case domain.ReportRecruitment:
		table.Headers = []string{"Mês", "Departamento", "Cargo", "Sexo", "QZ", "Contratações"}
		for _, record := range tabular.SortRecords(records, domain.RecruitmentSortKeys) {
			table.Rows = append(table.Rows, []string{
				record.Get("month"),
				record.Get("department"),
				record.Get("position"),
				record.Get("sex"),
				record.Get("qz"),
				strconv.Itoa(record.Int("hires")),
			})
		}
	default:
		return nil, fmt.Errorf("tipo de relatório desconhecido: %q", reportType)
	}

	return table, nil
}

// loadRecords busca a matriz (snapshot fresco ou fonte ao vivo), decodifica
// segundo o schema do relatório e aplica os filtros de igualdade. Em falha de
// fetch nenhum dado parcial é devolvido: o conjunto resultante é vazio e o
// erro sobe para o chamador.
func (s *Service) loadRecords(
	ctx context.Context,
	reportType domain.ReportType,
	filters map[string]string,
) ([]tabular.Record, domain.ReportMeta, error) {
	schema := domain.SchemaFor(reportType)
	if schema == nil {
		return nil, domain.ReportMeta{}, fmt.Errorf("tipo de relatório desconhecido: %q", reportType)
	}

	matrix, fromCache, fetchedAt, err := s.fetchMatrix(ctx, reportType)
	if err != nil {
		return nil, domain.ReportMeta{}, err
	}

	records := schema.DecodeMatrix(matrix)
	records = tabular.Apply(records, tabular.Filter(filters))

	meta := domain.ReportMeta{
		Type:      reportType,
		FetchedAt: fetchedAt,
		FromCache: fromCache,
		NoData:    matrix.Empty(),
		Rows:      len(records),
		Filters:   filters,
	}

	return records, meta, nil
}

func (s *Service) fetchMatrix(
	ctx context.Context,
	reportType domain.ReportType,
) (sourcedomain.RawMatrix, bool, time.Time, error) {
	if s.useCache {
		snapshot, err := s.snapshotRepository.GetLatest(reportType)
		if err != nil {
			logrus.WithError(err).WithField("report", reportType).
				Warn("Erro ao buscar snapshot do relatório; seguindo para a fonte")
		}

		ttl := time.Duration(s.cfg.Snapshot.TTLMinutes) * time.Minute
		if snapshot.Fresh(ttl, time.Now()) {
			return snapshot.Matrix, true, snapshot.FetchedAt, nil
		}
	}

	matrix, err := s.source.FetchReport(ctx, reportType)
	if err != nil {
		return nil, false, time.Time{}, err
	}

	fetchedAt := time.Now()

	if s.useCache {
		s.storeSnapshot(reportType, matrix, fetchedAt)
	}

	return matrix, false, fetchedAt, nil
}

// storeSnapshot grava a matriz recém-buscada como snapshot. Falha aqui não
// derruba a requisição: o dado já está em mãos, o cache é melhor esforço.
func (s *Service) storeSnapshot(reportType domain.ReportType, matrix [][]interface{}, fetchedAt time.Time) {
	token, err := s.snapshotRepository.NextSyncToken(reportType)
	if err != nil {
		logrus.WithError(err).WithField("report", reportType).
			Warn("Erro ao reservar token de sincronização para o snapshot")
		return
	}

	err = s.snapshotRepository.Save(&domain.MatrixSnapshot{
		ReportType: reportType,
		SyncToken:  token,
		Matrix:     matrix,
		FetchedAt:  fetchedAt,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"report":     reportType,
			"sync_token": token,
		}).Warn("Erro ao gravar snapshot do relatório")
	}
}

func roundedSummary(series []tabular.SeriesPoint) tabular.Summary {
	summary := tabular.Summarize(tabular.SeriesTotals(series))

	summary.Mean = utils.RoundWithTwoDecimalPlace(summary.Mean)
	summary.Median = utils.RoundWithTwoDecimalPlace(summary.Median)
	summary.StdDev = utils.RoundWithTwoDecimalPlace(summary.StdDev)

	return summary
}
