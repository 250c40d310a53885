package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ConfirmationLink monta o link wa.me com a mensagem de confirmação
// do agendamento, usando o telefone cadastrado do cliente.
func ConfirmationLink(countryCode, phone, serviceName string, start time.Time) string {
	msg := fmt.Sprintf(
		"Olá! Seu agendamento de %s está confirmado para %s às %s.",
		serviceName,
		start.Format("02/01/2006"),
		start.Format("15:04"),
	)

	return fmt.Sprintf(
		"https://wa.me/%s%s?text=%s",
		countryCode,
		sanitizePhone(phone),
		url.QueryEscape(msg),
	)
}

// mantém apenas dígitos (o cadastro aceita telefone com máscara)
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
