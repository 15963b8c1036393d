package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API. As duas taxonomias do dashboard: falhas de busca
// na fonte (visíveis ao usuário, com retry) e erros de requisição/servidor.
// Linhas malformadas da planilha nunca aparecem aqui: são absorvidas em
// silêncio pelo pipeline de decodificação.
const (
	// Erros de fonte de dados (falha de fetch)
	ErrSourceTimeout   = "SRC_001" // Timeout na busca da fonte
	ErrSourceStatus    = "SRC_002" // Fonte respondeu com status não-2xx
	ErrSourceMalformed = "SRC_003" // Corpo da fonte não é JSON válido
	ErrSourceConfig    = "SRC_004" // Fonte sem configuração utilizável

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrUnknownReport  = "VAL_002" // Tipo de relatório desconhecido
	ErrInvalidFilter  = "VAL_003" // Filtro não suportado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExportFailed      = "SRV_003" // Erro ao gerar a exportação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSourceTimeout:     http.StatusGatewayTimeout,
	ErrSourceStatus:      http.StatusBadGateway,
	ErrSourceMalformed:   http.StatusBadGateway,
	ErrSourceConfig:      http.StatusServiceUnavailable,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnknownReport:     http.StatusBadRequest,
	ErrInvalidFilter:     http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExportFailed:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
