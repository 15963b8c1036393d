package domain

import "github.com/vfg2006/rh-dashboard-api/pkg/tabular"

// Descritores de schema por domínio de relatório: mapa posicional de campos,
// campos obrigatórios e chaves de ordenação/série. As planilhas de origem têm
// schema implícito e posicional; aqui ele vira configuração nomeada, validada
// uma única vez na subida do processo.

// HeadcountSchema decodifica o quadro de efetivo
var HeadcountSchema = mustSchema(
	"headcount",
	[]tabular.Field{
		{Name: "id", Index: 0, Kind: tabular.String},
		{Name: "name", Index: 1, Kind: tabular.String},
		{Name: "department", Index: 2, Kind: tabular.String},
		{Name: "position", Index: 3, Kind: tabular.String},
		{Name: "contract_type", Index: 4, Kind: tabular.StringDefault, Default: "CLT"},
		{Name: "status", Index: 5, Kind: tabular.String},
	},
	"id", "name",
)

// DeparturesSchema decodifica a planilha de desligamentos. QZ é o código de
// categoria usado pela própria planilha de origem; o rótulo é preservado
var DeparturesSchema = mustSchema(
	"departures",
	[]tabular.Field{
		{Name: "qz", Index: 0, Kind: tabular.String},
		{Name: "month", Index: 1, Kind: tabular.String},
		{Name: "sex", Index: 2, Kind: tabular.String},
		{Name: "department", Index: 3, Kind: tabular.String},
		{Name: "contract_type", Index: 4, Kind: tabular.String},
		{Name: "departures", Index: 5, Kind: tabular.Int},
	},
	"qz", "month", "department",
)

// RecruitmentSchema decodifica a planilha de recrutamento
var RecruitmentSchema = mustSchema(
	"recruitment",
	[]tabular.Field{
		{Name: "month", Index: 0, Kind: tabular.String},
		{Name: "qz", Index: 1, Kind: tabular.String},
		{Name: "sex", Index: 2, Kind: tabular.String},
		{Name: "department", Index: 3, Kind: tabular.String},
		{Name: "position", Index: 4, Kind: tabular.String},
		{Name: "hires", Index: 5, Kind: tabular.Int},
	},
	"month", "department",
)

// DeparturesSortKeys define a ordem total do relatório de desligamentos:
// mês, depois QZ, sexo e tipo de contrato
var DeparturesSortKeys = tabular.SortKeys{
	Bucket:    "month",
	Primary:   "qz",
	Secondary: "sex",
	Tertiary:  "contract_type",
}

// RecruitmentSortKeys define a ordem total do relatório de recrutamento
var RecruitmentSortKeys = tabular.SortKeys{
	Bucket:    "month",
	Primary:   "department",
	Secondary: "sex",
	Tertiary:  "position",
}

// SchemaFor retorna o schema do tipo de relatório
func SchemaFor(reportType ReportType) *tabular.Schema {
	switch reportType {
	case ReportHeadcount:
		return HeadcountSchema
	case ReportDepartures:
		return DeparturesSchema
	case ReportRecruitment:
		return RecruitmentSchema
	}

	return nil
}

// FilterFields lista os campos aceitos como filtro de igualdade na API
var FilterFields = []string{"department", "contract_type", "sex", "qz"}

func mustSchema(name string, fields []tabular.Field, required ...string) *tabular.Schema {
	schema, err := tabular.NewSchema(name, fields, required...)
	if err != nil {
		panic(err)
	}

	return schema
}
