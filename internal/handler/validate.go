package handler

import (
	"strings"

	"github.com/trekvision/crm-server/internal/countries"
	"github.com/trekvision/crm-server/internal/expiry"
	"github.com/trekvision/crm-server/internal/model"
	"github.com/trekvision/crm-server/internal/utils"
)

// validateClientFields checks every field invariant on a create/update/
// import payload and canonicalizes the record in place: the name is
// trimmed, the country is rewritten to its enumeration casing and the MAC
// address to uppercase colon-grouped pairs. Returns a user-facing message
// for the first violation found, or "" when the payload is valid.
func validateClientFields(f *model.ClientFields) string {
	f.FullName = strings.TrimSpace(f.FullName)
	if len([]rune(f.FullName)) < 4 {
		return "O nome deve ter pelo menos 4 caracteres"
	}

	if len(utils.DigitsOnly(f.Phone)) < 6 {
		return "O telefone deve ter pelo menos 6 dígitos"
	}
	f.Phone = strings.TrimSpace(f.Phone)

	canonical, ok := countries.Canonical(f.Country)
	if !ok {
		return "País inválido"
	}
	f.Country = canonical

	mac, ok := formatMAC(f.MACAddress)
	if !ok {
		if strings.TrimSpace(f.MACAddress) == "" {
			return "O MAC é obrigatório"
		}
		return "O MAC deve ter 12 caracteres hexadecimais"
	}
	f.MACAddress = mac

	f.EntryDate = strings.TrimSpace(f.EntryDate)
	if _, ok := expiry.ParseEntryDate(f.EntryDate, nil); !ok {
		return "Data de início inválida"
	}

	if f.SubscriptionDays < 0 {
		return "A duração não pode ser negativa"
	}
	return ""
}

// formatMAC strips separators, uppercases and regroups a hardware address
// into colon-separated pairs ("001b44113ab7" -> "00:1B:44:11:3A:B7").
// Returns false unless exactly 12 hex digits remain.
func formatMAC(s string) (string, bool) {
	var hex []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'F':
			hex = append(hex, c)
		case c >= 'a' && c <= 'f':
			hex = append(hex, c-'a'+'A')
		}
	}
	if len(hex) != 12 {
		return "", false
	}
	var b strings.Builder
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.Write(hex[i : i+2])
	}
	return b.String(), true
}
