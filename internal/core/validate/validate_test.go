package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "red", false},
		{"valid with spaces", "dual lands", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PileName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "PileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestPileNameField(t *testing.T) {
	assert.NoError(t, PileNameField("piles", "gold"))

	err := PileNameField("piles", " ")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "piles", fieldErrs[0].Field)
}

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive(1))
	assert.Error(t, Positive(0))
	assert.Error(t, Positive(-3))
}
