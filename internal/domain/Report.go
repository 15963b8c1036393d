package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/rh-dashboard-api/pkg/tabular"
)

// ReportType identifica um dos domínios de relatório servidos pelo dashboard
type ReportType string

const (
	ReportHeadcount   ReportType = "headcount"
	ReportDepartures  ReportType = "departures"
	ReportRecruitment ReportType = "recruitment"
)

// ReportTypes lista os tipos de relatório conhecidos, na ordem do dashboard
var ReportTypes = []ReportType{ReportHeadcount, ReportDepartures, ReportRecruitment}

// ParseReportType valida o tipo vindo da rota
func ParseReportType(value string) (ReportType, error) {
	switch ReportType(value) {
	case ReportHeadcount, ReportDepartures, ReportRecruitment:
		return ReportType(value), nil
	}

	return "", fmt.Errorf("tipo de relatório desconhecido: %q", value)
}

// ReportMeta acompanha toda resposta de relatório: um fetch bem-sucedido mas
// vazio é um estado distinto de erro ("sem dados"), nunca misturado com ele
type ReportMeta struct {
	Type      ReportType        `json:"type"`
	FetchedAt time.Time         `json:"fetched_at"`
	FromCache bool              `json:"from_cache"`
	NoData    bool              `json:"no_data"`
	Rows      int               `json:"rows"`
	Filters   map[string]string `json:"filters,omitempty"`
}

// HeadcountReport é a resposta do relatório de efetivo
type HeadcountReport struct {
	Meta           ReportMeta       `json:"meta"`
	ByDepartment   []tabular.Pair   `json:"by_department"`
	ByContractType []tabular.Pair   `json:"by_contract_type"`
	ByStatus       []tabular.Pair   `json:"by_status"`
	Employees      []Employee       `json:"employees"`
}

// DeparturesReport é a resposta do relatório de desligamentos
type DeparturesReport struct {
	Meta         ReportMeta            `json:"meta"`
	ByDepartment []tabular.Pair        `json:"by_department"`
	ByQZ         []tabular.Pair        `json:"by_qz"`
	AveragePerQZ int                   `json:"average_per_qz"`
	Series       []tabular.SeriesPoint `json:"series"`
	Groups       []tabular.BucketGroup `json:"groups"`
	Summary      tabular.Summary       `json:"summary"`
}

// RecruitmentReport é a resposta do relatório de recrutamento
type RecruitmentReport struct {
	Meta         ReportMeta            `json:"meta"`
	ByDepartment []tabular.Pair        `json:"by_department"`
	ByPosition   []tabular.Pair        `json:"by_position"`
	Series       []tabular.SeriesPoint `json:"series"`
	Groups       []tabular.BucketGroup `json:"groups"`
	Summary      tabular.Summary       `json:"summary"`
}

// ReportTable é a visão tabular genérica de um relatório, usada na exportação
type ReportTable struct {
	Type    ReportType `json:"type"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
