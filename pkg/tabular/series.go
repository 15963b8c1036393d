package tabular

import "fmt"

// Buckets é o domínio fixo da série temporal: os 12 meses do calendário.
const Buckets = 12

// SeriesPoint é um bucket da série com um valor acumulado por categoria.
// Todas as categorias conhecidas estão presentes em todos os pontos, mesmo
// que com valor 0, para que gráficos empilhados nunca vejam buracos.
type SeriesPoint struct {
	Bucket int            `json:"bucket"`
	Label  string         `json:"label"`
	Values map[string]int `json:"values"`
}

// MonthlySeries monta a série densa de 12 buckets somando o campo numérico
// dos registros cujo campo de tempo resolve para o bucket. O campo de tempo
// é interpretado com ParseIntOrZero: valores não numéricos caem no bucket 0,
// fora do domínio 1..12, e portanto nunca contribuem para o gráfico, ainda
// que contem em totais agregados calculados em outro lugar. A ordem de saída
// segue o domínio fixo, não a ordem de descoberta.
func MonthlySeries(records []Record, monthField, valueField string, category KeyFunc) []SeriesPoint {
	categories := make([]string, 0)
	seen := make(map[string]bool)

	for _, record := range records {
		key := category(record)
		if !seen[key] {
			seen[key] = true
			categories = append(categories, key)
		}
	}

	series := make([]SeriesPoint, 0, Buckets)

	for bucket := 1; bucket <= Buckets; bucket++ {
		values := make(map[string]int, len(categories))
		for _, key := range categories {
			values[key] = 0
		}

		series = append(series, SeriesPoint{
			Bucket: bucket,
			Label:  fmt.Sprintf("Bucket %d", bucket),
			Values: values,
		})
	}

	for _, record := range records {
		bucket := ParseIntOrZero(record.Get(monthField))
		if bucket < 1 || bucket > Buckets {
			continue
		}

		series[bucket-1].Values[category(record)] += record.Int(valueField)
	}

	return series
}

// SeriesTotals devolve o total de cada bucket da série, na ordem do domínio.
// É a entrada típica de Summarize.
func SeriesTotals(series []SeriesPoint) []float64 {
	totals := make([]float64, 0, len(series))

	for _, point := range series {
		total := 0
		for _, value := range point.Values {
			total += value
		}
		totals = append(totals, float64(total))
	}

	return totals
}
