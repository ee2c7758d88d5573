package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	line := FormatLine(ClientAuditEvent{
		Action: ActionArchived, ClientID: "abc-123", FullName: "João Silva",
		Actor: "admin", OccurredAt: "2024-01-20T10:00:00Z",
	})
	assert.Equal(t,
		`[2024-01-20T10:00:00Z] Client archived | id=abc-123 | name="João Silva" | actor=admin`,
		line)
}

func TestFormatLineImport(t *testing.T) {
	line := FormatLine(ClientAuditEvent{
		Action: ActionImported, Count: 12, Actor: "admin",
		OccurredAt: "2024-01-20T10:00:00Z",
	})
	assert.Equal(t, "[2024-01-20T10:00:00Z] Client imported | count=12 | actor=admin", line)
}
