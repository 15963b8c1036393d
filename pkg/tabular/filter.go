package tabular

// Filter é um conjunto de filtros de igualdade campo → valor. Uma vez ativo,
// todo consumidor (agregação, série, agrupamento) opera sobre o subconjunto
// filtrado, nunca sobre o conjunto bruto.
type Filter map[string]string

// Apply retorna o subconjunto de registros que satisfaz todos os filtros.
// Filtro vazio ou nulo devolve o próprio conjunto de entrada.
func Apply(records []Record, filter Filter) []Record {
	if len(filter) == 0 {
		return records
	}

	filtered := make([]Record, 0, len(records))

	for _, record := range records {
		if matches(record, filter) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func matches(record Record, filter Filter) bool {
	for field, expected := range filter {
		if record.Get(field) != expected {
			return false
		}
	}

	return true
}
