package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
)

// ======================================================
// BUSINESS ERROR -> HTTP
// ======================================================

var businessStatus = map[string]int{
	"invalid_credentials":   http.StatusUnauthorized,
	"account_disabled":      http.StatusForbidden,
	"forbidden":             http.StatusForbidden,
	"appointment_not_found": http.StatusNotFound,
	"tenant_not_found":      http.StatusNotFound,
	"logo_not_found":        http.StatusNotFound,
	"email_already_exists":  http.StatusConflict,
	"invalid_state":         http.StatusConflict,
	"image_too_large":       http.StatusRequestEntityTooLarge,
	"billing_disabled":      http.StatusServiceUnavailable,
}

var businessMessage = map[string]string{
	"invalid_credentials":   "E-mail ou senha incorretos.",
	"account_disabled":      "Conta desativada. Entre em contato com o suporte.",
	"forbidden":             "Acesso restrito ao administrador.",
	"name_required":         "Nome é obrigatório.",
	"description_required":  "Descrição é obrigatória.",
	"missing_selection":     "Preencha todos os campos obrigatórios.",
	"client_not_found":      "Cliente não encontrado.",
	"staff_not_found":       "Barbeiro não encontrado.",
	"staff_inactive":        "Barbeiro inativo.",
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"invalid_state":         "Mudança de status não permitida.",
	"invalid_status":        "Status inválido.",
	"invalid_date":          "Data inválida.",
	"invalid_time":          "Hora inválida.",
	"invalid_month":         "Mês inválido.",
	"invalid_birth_date":    "Data de nascimento inválida.",
	"invalid_amount":        "Valor deve ser maior que zero.",
	"invalid_type":          "Tipo deve ser receita ou despesa.",
	"invalid_price":         "Preço não pode ser negativo.",
	"invalid_duration":      "Duração mínima de 15 minutos.",
	"invalid_commission":    "Comissão deve estar entre 0 e 100.",
	"invalid_email":         "E-mail inválido.",
	"invalid_email_domain":  "O domínio do e-mail informado não parece ser válido.",
	"weak_password":         "A senha deve ter ao menos 6 caracteres.",
	"email_already_exists":  "Já existe uma barbearia com este e-mail.",
	"tenant_not_found":      "Barbearia não encontrada.",
	"invalid_plan":          "Plano inválido.",
	"cannot_disable_self":   "Você não pode desativar a própria conta.",
	"billing_disabled":      "Cobrança indisponível.",
	"invalid_image":         "Imagem inválida. Envie PNG, JPEG ou WebP.",
	"image_too_large":       "Imagem muito grande.",
	"logo_not_found":        "Logo não encontrada.",
}

// writeError responde erros de negócio com o código próprio e registra o
// resto como erro interno.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.CodeOf(err)
	if !ok {
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg, ok := businessMessage[code]
	if !ok {
		msg = "Requisição inválida."
	}

	httperr.Write(c, status, code, msg)
}

func invalidRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
