package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFCFA(t *testing.T) {
	assert.Equal(t, "0 FCFA", FormatFCFA(0))
	assert.Equal(t, "500 FCFA", FormatFCFA(500))
	assert.Equal(t, "2 500 FCFA", FormatFCFA(2500))
	assert.Equal(t, "1 234 567 FCFA", FormatFCFA(1234567))
	assert.Equal(t, "-2 500 FCFA", FormatFCFA(-2500))
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("u1", "", 2500, 0)
	assert.Error(t, err)
	_, err = NewProduct("u1", "Riz 5kg", 0, 0)
	assert.Error(t, err)
	_, err = NewProduct("u1", "Riz 5kg", 2500, -1)
	assert.Error(t, err)
	_, err = NewProduct("", "Riz 5kg", 2500, 0)
	assert.Error(t, err)

	p, err := NewProduct("u1", "  Riz 5kg  ", 2500, 10)
	assert.NoError(t, err)
	assert.Equal(t, "Riz 5kg", p.Name)
}
