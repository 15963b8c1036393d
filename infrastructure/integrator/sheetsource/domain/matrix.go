package domain

// RawMatrix é o payload bruto de uma fonte de planilha: uma matriz de
// células heterogêneas. A primeira linha é cabeçalho e é ignorada pelo
// pipeline de decodificação.
type RawMatrix [][]interface{}

// Empty indica um retorno sem dados úteis: matriz ausente, vazia ou só com a
// linha de cabeçalho. Não é um erro: é o estado "sem dados" do dashboard.
func (m RawMatrix) Empty() bool {
	return len(m) <= 1
}

// DataRows retorna o número de linhas de dados (sem o cabeçalho).
func (m RawMatrix) DataRows() int {
	if m.Empty() {
		return 0
	}

	return len(m) - 1
}
