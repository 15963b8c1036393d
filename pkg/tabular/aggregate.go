package tabular

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// KeyFunc extrai a chave de agrupamento de um registro. Pode ser um campo
// simples ou uma composição de campos.
type KeyFunc func(Record) string

// FieldKey retorna um KeyFunc para um campo texto simples.
func FieldKey(name string) KeyFunc {
	return func(record Record) string {
		return record.Get(name)
	}
}

// Pair é um par (chave, valor) de uma agregação ordenada.
type Pair struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// CountBy conta os registros por chave. O resultado vem ordenado por valor
// decrescente; empates preservam a ordem de primeira aparição da chave.
func CountBy(records []Record, key KeyFunc) []Pair {
	return accumulate(records, key, func(Record) int { return 1 })
}

// SumBy soma o campo numérico indicado por chave, com a mesma ordenação
// estável decrescente de CountBy.
func SumBy(records []Record, field string, key KeyFunc) []Pair {
	return accumulate(records, key, func(record Record) int {
		return record.Int(field)
	})
}

// accumulate agrega na ordem de chegada e só então ordena. A ordenação
// precisa ser estável: empates mantêm a ordem de primeira aparição.
func accumulate(records []Record, key KeyFunc, value func(Record) int) []Pair {
	totals := make(map[string]int)
	order := make([]string, 0)

	for _, record := range records {
		k := key(record)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += value(record)
	}

	pairs := make([]Pair, 0, len(order))
	for _, k := range order {
		pairs = append(pairs, Pair{Key: k, Value: totals[k]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Value > pairs[j].Value
	})

	return pairs
}

// AveragePerOccurrence calcula a média por ocorrência de categoria: a soma
// total do campo dividida pelo número de pares (bucket, chave) com soma
// diferente de zero. Uma categoria presente em 3 meses distintos conta 3
// vezes no denominador: é a média por instância observada de categoria,
// não por categoria única. Denominador zero resulta em 0, nunca em erro.
func AveragePerOccurrence(records []Record, bucketField, field string, key KeyFunc) int {
	type occurrence struct {
		bucket string
		key    string
	}

	totals := make(map[occurrence]int)
	sum := 0

	for _, record := range records {
		value := record.Int(field)
		sum += value

		totals[occurrence{
			bucket: record.Get(bucketField),
			key:    key(record),
		}] += value
	}

	occurrences := 0
	for _, total := range totals {
		if total != 0 {
			occurrences++
		}
	}

	if occurrences == 0 {
		return 0
	}

	return int(math.Round(float64(sum) / float64(occurrences)))
}

// Summary condensa os totais mensais de um relatório em estatísticas
// descritivas para o cabeçalho do dashboard.
type Summary struct {
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summarize calcula as estatísticas sobre os valores informados (tipicamente
// os totais por bucket de uma série). Conjunto vazio resulta em zeros.
func Summarize(values []float64) Summary {
	summary := Summary{}

	if len(values) == 0 {
		return summary
	}

	total := 0.0
	for _, value := range values {
		total += value
	}

	summary.Total = int(math.Round(total))

	// stats só retorna erro para conjunto vazio, já tratado acima.
	if mean, err := stats.Mean(values); err == nil {
		summary.Mean = mean
	}

	if median, err := stats.Median(values); err == nil {
		summary.Median = median
	}

	if stdDev, err := stats.StdDevP(values); err == nil {
		summary.StdDev = stdDev
	}

	return summary
}
