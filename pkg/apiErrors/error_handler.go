package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// Códigos de erro
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidMetric       = "VAL_004" // Métrica desconhecida
	ErrEmptySelection      = "VAL_005" // Nenhuma campanha ou métrica selecionada
	ErrDuplicateSelection  = "VAL_006" // Campanha repetida na seleção

	// Erros de roteamento
	ErrNotFound         = "RTE_001" // Rota não encontrada
	ErrMethodNotAllowed = "RTE_002" // Método não permitido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrServiceDisabled   = "SRV_003" // Serviço não disponível nesta instância
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidMetric:         http.StatusBadRequest,
	ErrEmptySelection:        http.StatusBadRequest,
	ErrDuplicateSelection:    http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrServiceDisabled:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf retorna o status HTTP associado ao código
func StatusOf(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go, escolhendo o código
// pelos erros de domínio conhecidos. Erros não reconhecidos usam fallbackCode.
func FromError(err error, fallbackCode string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	code := fallbackCode
	switch {
	case errors.Is(err, domain.ErrInvalidMetricKey):
		code = ErrInvalidMetric
	case errors.Is(err, domain.ErrEmptySelection), errors.Is(err, domain.ErrEmptyBatch):
		code = ErrEmptySelection
	case errors.Is(err, domain.ErrDuplicateCampaign):
		code = ErrDuplicateSelection
	case errors.Is(err, domain.ErrInvalidDateRange):
		code = ErrInvalidFormat
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// WriteFromError combina FromError e WriteError
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string) {
	apiErr := FromError(err, fallbackCode)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}
