package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// ShortRowError indica uma linha com menos colunas do que o schema exige.
type ShortRowError struct {
	Schema  string
	Columns int
	Minimum int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf(
		"linha curta para o schema %q: %d colunas, mínimo %d",
		e.Schema, e.Columns, e.Minimum,
	)
}

// Record é uma linha decodificada e tipada. Os campos texto já chegam sem
// espaços nas bordas; os numéricos já chegam com o default 0 aplicado.
type Record struct {
	strings map[string]string
	ints    map[string]int
}

// NewRecord monta um Record a partir de valores já tipados. Usado pelos
// testes e por quem precisa injetar registros sem passar pelo decodificador.
func NewRecord(fields map[string]string, numbers map[string]int) Record {
	r := Record{
		strings: make(map[string]string, len(fields)),
		ints:    make(map[string]int, len(numbers)),
	}

	for name, value := range fields {
		r.strings[name] = value
	}

	for name, value := range numbers {
		r.ints[name] = value
	}

	return r
}

// Get retorna o campo texto pelo nome; campos desconhecidos retornam "".
func (r Record) Get(name string) string {
	return r.strings[name]
}

// Int retorna o campo numérico pelo nome; campos desconhecidos retornam 0.
func (r Record) Int(name string) int {
	return r.ints[name]
}

// MarshalJSON serializa o registro como um objeto plano campo → valor.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.strings)+len(r.ints))

	for name, value := range r.strings {
		flat[name] = value
	}

	for name, value := range r.ints {
		flat[name] = value
	}

	return json.Marshal(flat)
}

// DecodeRow decodifica uma linha bruta segundo o schema. Linhas com menos
// colunas do que o índice mais alto referenciado são rejeitadas com
// ShortRowError; células não numéricas em campos Int viram 0 em silêncio.
func (s *Schema) DecodeRow(row []interface{}) (Record, error) {
	if len(row) < s.minColumns {
		return Record{}, &ShortRowError{
			Schema:  s.Name,
			Columns: len(row),
			Minimum: s.minColumns,
		}
	}

	record := Record{
		strings: make(map[string]string),
		ints:    make(map[string]int),
	}

	for _, field := range s.Fields {
		cell := strings.TrimSpace(cellString(row[field.Index]))

		switch field.Kind {
		case Int:
			record.ints[field.Name] = ParseIntOrZero(cell)
		case StringDefault:
			if cell == "" {
				cell = field.Default
			}
			record.strings[field.Name] = cell
		default:
			record.strings[field.Name] = cell
		}
	}

	return record, nil
}

// Valid aplica o predicado de campos obrigatórios: todos precisam estar
// preenchidos após o trim. Registros inválidos são descartados em silêncio
// pelo chamador, nunca reportados como erro.
func (s *Schema) Valid(record Record) bool {
	for _, name := range s.Required {
		if record.Get(name) == "" {
			return false
		}
	}

	return true
}

// DecodeMatrix decodifica a matriz completa vinda da fonte: a primeira linha
// é cabeçalho e é pulada; linhas curtas ou sem os campos obrigatórios são
// descartadas em silêncio. Matrizes vazias ou somente com cabeçalho resultam
// em conjunto vazio, não em erro.
func (s *Schema) DecodeMatrix(matrix [][]interface{}) []Record {
	records := make([]Record, 0)

	if len(matrix) <= 1 {
		return records
	}

	for _, row := range matrix[1:] {
		record, err := s.DecodeRow(row)
		if err != nil {
			continue
		}

		if !s.Valid(record) {
			continue
		}

		records = append(records, record)
	}

	return records
}

// cellString converte uma célula heterogênea para texto. Números vindos do
// JSON chegam como float64 e são formatados sem casa decimal artificial.
func cellString(cell interface{}) string {
	switch value := cell.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// ParseIntOrZero interpreta o texto como inteiro; qualquer valor não
// numérico (inclusive vazio) vira 0. Contrato de decodificação permissiva
// herdado da fonte, documentado e preservado de propósito.
func ParseIntOrZero(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}

	return parsed
}
