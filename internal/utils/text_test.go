package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	cases := map[string]string{
		"João":           "joao",
		"SÃO PAULO":      "sao paulo",
		"Eslovênia":      "eslovenia",
		"plain":          "plain",
		"":               "",
		"Müller-Straße":  "muller-straße", // ß is not a combining mark
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeText(in), "input %q", in)
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11999999999", DigitsOnly("(11) 99999-9999"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
	assert.Equal(t, "123", DigitsOnly("1a2b3c"))
}
