package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeSchema(t *testing.T) *Schema {
	t.Helper()

	schema, err := NewSchema(
		"employees",
		[]Field{
			{Name: "id", Index: 0, Kind: String},
			{Name: "name", Index: 1, Kind: String},
			{Name: "department", Index: 2, Kind: String},
			{Name: "position", Index: 3, Kind: String},
			{Name: "contract_type", Index: 4, Kind: StringDefault, Default: "CLT"},
			{Name: "status", Index: 5, Kind: String},
		},
		"id", "name",
	)
	require.NoError(t, err)

	return schema
}

func departureSchema(t *testing.T) *Schema {
	t.Helper()

	schema, err := NewSchema(
		"departures",
		[]Field{
			{Name: "qz", Index: 0, Kind: String},
			{Name: "month", Index: 1, Kind: String},
			{Name: "sex", Index: 2, Kind: String},
			{Name: "department", Index: 3, Kind: String},
			{Name: "contract_type", Index: 4, Kind: String},
			{Name: "departures", Index: 5, Kind: Int},
		},
		"qz", "month", "department",
	)
	require.NoError(t, err)

	return schema
}

func TestNewSchema_Validacao(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		fields   []Field
		required []string
		wantErr  bool
	}{
		{
			name:    "schema sem nome é rejeitado",
			fields:  []Field{{Name: "id", Index: 0}},
			wantErr: true,
		},
		{
			name:    "schema sem campos é rejeitado",
			schema:  "empty",
			wantErr: true,
		},
		{
			name:    "índice negativo é rejeitado",
			schema:  "bad",
			fields:  []Field{{Name: "id", Index: -1}},
			wantErr: true,
		},
		{
			name:    "campo duplicado é rejeitado",
			schema:  "dup",
			fields:  []Field{{Name: "id", Index: 0}, {Name: "id", Index: 1}},
			wantErr: true,
		},
		{
			name:     "obrigatório não mapeado é rejeitado",
			schema:   "missing",
			fields:   []Field{{Name: "id", Index: 0}},
			required: []string{"name"},
			wantErr:  true,
		},
		{
			name:     "obrigatório numérico é rejeitado",
			schema:   "numreq",
			fields:   []Field{{Name: "count", Index: 0, Kind: Int}},
			required: []string{"count"},
			wantErr:  true,
		},
		{
			name:     "schema válido calcula a aridade mínima",
			schema:   "ok",
			fields:   []Field{{Name: "id", Index: 0}, {Name: "month", Index: 4}},
			required: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := NewSchema(tt.schema, tt.fields, tt.required...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 5, schema.MinColumns())
		})
	}
}

func TestDecodeRow_LinhaCurta(t *testing.T) {
	schema := employeeSchema(t)

	// Qualquer linha abaixo da aridade mínima é rejeitada, nunca decodificada
	// parcialmente.
	for columns := 0; columns < schema.MinColumns(); columns++ {
		row := make([]interface{}, columns)

		_, err := schema.DecodeRow(row)

		var shortRow *ShortRowError
		assert.ErrorAs(t, err, &shortRow, "linha com %d colunas deveria ser rejeitada", columns)
	}
}

func TestDecodeRow_TrimEDefaults(t *testing.T) {
	schema := employeeSchema(t)

	record, err := schema.DecodeRow([]interface{}{"  7 ", " Ana Souza ", "Vendas", "", nil, "Ativo"})
	require.NoError(t, err)

	assert.Equal(t, "7", record.Get("id"))
	assert.Equal(t, "Ana Souza", record.Get("name"))
	assert.Equal(t, "", record.Get("position"))
	// Campo com default recebe o valor configurado quando a célula é vazia.
	assert.Equal(t, "CLT", record.Get("contract_type"))
}

func TestDecodeRow_NumericoPermissivo(t *testing.T) {
	schema := departureSchema(t)

	tests := []struct {
		name string
		cell interface{}
		want int
	}{
		{name: "inteiro em texto", cell: "4", want: 4},
		{name: "número vindo do JSON como float64", cell: float64(7), want: 7},
		{name: "texto não numérico vira 0", cell: "n/a", want: 0},
		{name: "célula vazia vira 0", cell: "", want: 0},
		{name: "célula nula vira 0", cell: nil, want: 0},
		{name: "fração vira 0", cell: "3.5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := schema.DecodeRow([]interface{}{"Q1", "3", "F", "Vendas", "CLT", tt.cell})
			require.NoError(t, err)

			assert.Equal(t, tt.want, record.Int("departures"))
		})
	}
}

func TestValid_CamposObrigatorios(t *testing.T) {
	schema := employeeSchema(t)

	record, err := schema.DecodeRow([]interface{}{"1", "   ", "Vendas", "Caixa", "CLT", "Ativo"})
	require.NoError(t, err)

	// Obrigatório vazio após o trim derruba o registro.
	assert.False(t, schema.Valid(record))

	record, err = schema.DecodeRow([]interface{}{"1", "Ana", "Vendas", "Caixa", "CLT", "Ativo"})
	require.NoError(t, err)
	assert.True(t, schema.Valid(record))
}

func TestDecodeMatrix_CenarioCompleto(t *testing.T) {
	schema := employeeSchema(t)

	matrix := [][]interface{}{
		{"h"},
		{"1", "Ana", "Sales", "Clerk", "", "Active"},
		{"2", "", "Sales", "Clerk", "", ""},
	}

	records := schema.DecodeMatrix(matrix)

	// Só a primeira linha de dados sobrevive: a segunda tem o nome vazio.
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Get("id"))
	assert.Equal(t, "Ana", records[0].Get("name"))
}

func TestDecodeMatrix_SemDados(t *testing.T) {
	schema := employeeSchema(t)

	assert.Empty(t, schema.DecodeMatrix(nil))
	assert.Empty(t, schema.DecodeMatrix([][]interface{}{}))
	// Matriz só com cabeçalho é "sem dados", não erro.
	assert.Empty(t, schema.DecodeMatrix([][]interface{}{{"id", "nome"}}))
}
