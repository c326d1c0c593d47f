package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNotaNumber(t *testing.T) {
	// Padding width follows the stored string's length.
	assert.Equal(t, "008", NextNotaNumber("007"))
	assert.Equal(t, "8", NextNotaNumber("7"))
	assert.Equal(t, "100", NextNotaNumber("099"))
	assert.Equal(t, "010", NextNotaNumber("009"))

	// Overflowing the width widens the number instead of wrapping.
	assert.Equal(t, "1000", NextNotaNumber("999"))
}

func TestNextNotaNumberUnparseable(t *testing.T) {
	assert.Equal(t, "001", NextNotaNumber("abc"))
	assert.Equal(t, "1", NextNotaNumber(""))
}

func TestFormatNota(t *testing.T) {
	assert.Equal(t, "INV-008", FormatNota("INV", "008"))
	assert.Equal(t, "NOTA-1000", FormatNota("NOTA", "1000"))
}
