package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func departureRecord(qz, month, sex, department string, departures int) Record {
	return NewRecord(
		map[string]string{
			"qz":         qz,
			"month":      month,
			"sex":        sex,
			"department": department,
		},
		map[string]int{"departures": departures},
	)
}

func TestCountBy_OrdenacaoDecrescente(t *testing.T) {
	records := []Record{
		departureRecord("Q1", "1", "F", "Vendas", 1),
		departureRecord("Q1", "2", "M", "RH", 1),
		departureRecord("Q2", "1", "F", "Vendas", 1),
		departureRecord("Q1", "3", "F", "Vendas", 1),
	}

	pairs := CountBy(records, FieldKey("department"))

	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Key: "Vendas", Value: 3}, pairs[0])
	assert.Equal(t, Pair{Key: "RH", Value: 1}, pairs[1])
}

func TestCountBy_EmpateEstavel(t *testing.T) {
	// Empates preservam a ordem de primeira aparição da chave na entrada.
	records := []Record{
		departureRecord("Q1", "1", "F", "A", 5),
		departureRecord("Q1", "1", "F", "B", 5),
		departureRecord("Q1", "1", "F", "B", 5),
		departureRecord("Q1", "1", "F", "A", 5),
		departureRecord("Q1", "1", "F", "C", 5),
	}

	pairs := CountBy(records, FieldKey("department"))

	require.Len(t, pairs, 3)
	assert.Equal(t, "A", pairs[0].Key)
	assert.Equal(t, "B", pairs[1].Key)
	assert.Equal(t, "C", pairs[2].Key)
}

func TestSumBy(t *testing.T) {
	records := []Record{
		departureRecord("Q1", "1", "F", "Vendas", 5),
		departureRecord("Q1", "2", "M", "RH", 9),
		departureRecord("Q2", "1", "F", "Vendas", 3),
	}

	pairs := SumBy(records, "departures", FieldKey("department"))

	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Key: "RH", Value: 9}, pairs[0])
	assert.Equal(t, Pair{Key: "Vendas", Value: 8}, pairs[1])
}

func TestSumBy_EmpateEstavel(t *testing.T) {
	pairs := SumBy([]Record{
		departureRecord("Q1", "1", "F", "A", 5),
		departureRecord("Q1", "1", "F", "B", 5),
	}, "departures", FieldKey("department"))

	require.Len(t, pairs, 2)
	assert.Equal(t, "A", pairs[0].Key)
	assert.Equal(t, "B", pairs[1].Key)
}

func TestAveragePerOccurrence(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{
			name:    "conjunto vazio resulta em 0, nunca em erro",
			records: nil,
			want:    0,
		},
		{
			name: "somas zeradas não entram no denominador",
			records: []Record{
				departureRecord("Q1", "1", "F", "Vendas", 0),
				departureRecord("Q2", "2", "M", "RH", 0),
			},
			want: 0,
		},
		{
			// Q1 aparece em 3 meses distintos e conta 3 vezes no denominador:
			// média por instância observada de categoria, não por categoria
			// única. 30 / 4 ocorrências = 7.5, arredondado para 8.
			name: "categoria repetida por mês conta uma vez por mês",
			records: []Record{
				departureRecord("Q1", "1", "F", "Vendas", 10),
				departureRecord("Q1", "2", "F", "Vendas", 6),
				departureRecord("Q1", "3", "F", "Vendas", 4),
				departureRecord("Q2", "1", "M", "RH", 10),
			},
			want: 8,
		},
		{
			name: "duas linhas do mesmo mês e categoria somam numa ocorrência só",
			records: []Record{
				departureRecord("Q1", "1", "F", "Vendas", 2),
				departureRecord("Q1", "1", "M", "Vendas", 4),
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AveragePerOccurrence(tt.records, "month", "departures", FieldKey("qz"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	summary := Summarize([]float64{2, 4, 6, 8})

	assert.Equal(t, 20, summary.Total)
	assert.InDelta(t, 5.0, summary.Mean, 0.0001)
	assert.InDelta(t, 5.0, summary.Median, 0.0001)
	assert.InDelta(t, 2.2360, summary.StdDev, 0.001)
}
