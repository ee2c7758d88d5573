// Package export renders a client list to the CSV layout expected by the
// spreadsheet users import the file into.
package export

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/trekvision/crm-server/internal/model"
)

// Header is the fixed CSV header row.
const Header = "ID,Nome Completo,Telefone,País,MAC Address,Data Início,Duração,Status Pago"

// CSV renders the records in the given order. The output starts with a
// UTF-8 byte-order mark so spreadsheet applications pick up the encoding.
// Text fields are always double-quoted; numeric and boolean columns stay
// bare.
func CSV(clients []model.Client) []byte {
	var b bytes.Buffer
	b.WriteString("\uFEFF")
	b.WriteString(Header)
	for _, c := range clients {
		b.WriteByte('\n')
		cols := []string{
			quote(c.ID),
			quote(c.FullName),
			quote(c.Phone),
			quote(c.Country),
			quote(c.MACAddress),
			quote(c.EntryDate),
			strconv.Itoa(c.SubscriptionDays),
			paidLabel(c.IsPaid),
		}
		b.WriteString(strings.Join(cols, ","))
	}
	return b.Bytes()
}

// Filename returns the download name for an export generated on day t.
func Filename(t time.Time) string {
	return "clientes_crm_" + t.Format("2006-01-02") + ".csv"
}

func paidLabel(paid bool) string {
	if paid {
		return "Sim"
	}
	return "Não"
}

// quote wraps s in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
