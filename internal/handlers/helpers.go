package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/sipslabs/sips-api/internal/domain/ledger"
	"github.com/sipslabs/sips-api/internal/httperr"
	"github.com/sipslabs/sips-api/internal/timezone"
)

// mensagens por código de negócio; códigos fora da tabela viram 500
var businessMessages = map[string]string{
	"missing_date":           "Data obrigatória.",
	"invalid_kind":           "Selecione um tipo válido.",
	"missing_category":       "Selecione uma categoria válida.",
	"missing_payment_method": "Selecione um tipo de pagamento válido.",
	"missing_description":    "Por favor, preencha a descrição.",
	"invalid_amount":         "Valor deve ser maior que zero.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"client_not_found":       "Cliente não encontrado.",
	"service_not_found":      "Serviço não encontrado.",
	"entry_not_found":        "Lançamento não encontrado.",
}

func respondBusiness(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code := httperr.BusinessCode(err)
	msg, known := businessMessages[code]
	if !known {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	if strings.HasSuffix(code, "_not_found") {
		httperr.NotFound(c, code, msg)
		return
	}
	httperr.BadRequest(c, code, msg)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// parseLedgerFilter lê start/end/q da query string. Datas fora do
// formato AAAA-MM-DD abortam a requisição.
func parseLedgerFilter(c *gin.Context) (ledgerdomain.Filter, bool) {
	var filter ledgerdomain.Filter

	filter.Search = strings.TrimSpace(c.Query("q"))

	parse := func(param string) (*time.Time, bool) {
		raw := strings.TrimSpace(c.Query(param))
		if raw == "" {
			return nil, true
		}
		t, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_"+param, "Data inválida.")
			return nil, false
		}
		return &t, true
	}

	start, ok := parse("start")
	if !ok {
		return filter, false
	}
	end, ok := parse("end")
	if !ok {
		return filter, false
	}

	filter.Start = start
	filter.End = end
	return filter, true
}
