// Package tabular implementa o pipeline de normalização e agregação de dados
// tabulares: decodificação posicional de linhas brutas, validação de campos
// obrigatórios, agregações, séries mensais densas e agrupamentos aninhados.
// Todas as funções são puras; o conjunto de registros é reconstruído por
// inteiro a cada busca.
package tabular

import (
	"fmt"
)

// Kind define a transformação aplicada a uma célula ao decodificar o campo.
type Kind int

const (
	// String converte a célula para texto e remove espaços das bordas.
	String Kind = iota
	// StringDefault é como String, mas substitui o valor vazio pelo Default.
	StringDefault
	// Int interpreta a célula como inteiro; valores não numéricos viram 0.
	// Política permissiva herdada da fonte: nunca gera erro.
	Int
)

// Field mapeia um campo nomeado para um índice de coluna da linha bruta.
type Field struct {
	Name    string
	Index   int
	Kind    Kind
	Default string
}

// Schema descreve como decodificar e validar as linhas de um domínio de
// relatório: mapa posicional de campos mais o conjunto de campos
// obrigatórios. Validado uma única vez na construção.
type Schema struct {
	Name     string
	Fields   []Field
	Required []string

	minColumns int
}

// NewSchema valida o descritor e calcula a aridade mínima exigida pelas
// colunas referenciadas (índice mais alto + 1).
func NewSchema(name string, fields []Field, required ...string) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema sem nome")
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("schema %q sem campos", name)
	}

	byName := make(map[string]Field, len(fields))
	minColumns := 0

	for _, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("schema %q: campo sem nome no índice %d", name, field.Index)
		}

		if field.Index < 0 {
			return nil, fmt.Errorf("schema %q: campo %q com índice negativo", name, field.Name)
		}

		if _, exists := byName[field.Name]; exists {
			return nil, fmt.Errorf("schema %q: campo %q duplicado", name, field.Name)
		}

		byName[field.Name] = field

		if field.Index+1 > minColumns {
			minColumns = field.Index + 1
		}
	}

	for _, req := range required {
		field, exists := byName[req]
		if !exists {
			return nil, fmt.Errorf("schema %q: campo obrigatório %q não mapeado", name, req)
		}

		if field.Kind == Int {
			return nil, fmt.Errorf("schema %q: campo obrigatório %q não pode ser numérico", name, req)
		}
	}

	return &Schema{
		Name:       name,
		Fields:     fields,
		Required:   required,
		minColumns: minColumns,
	}, nil
}

// MinColumns retorna o número mínimo de colunas que uma linha precisa ter
// para ser decodificada por este schema.
func (s *Schema) MinColumns() int {
	return s.minColumns
}
