package ids_test

import (
	"strings"
	"testing"

	"github.com/andyle182810/gappwrite/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unique()", ids.Unique())
}

func TestNew(t *testing.T) {
	t.Parallel()

	first := ids.New()
	second := ids.New()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)

	_, err := ids.Custom(first)
	require.NoError(t, err)
}

func TestCustom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{name: "letters and digits", id: "user42", valid: true},
		{name: "inner specials", id: "a.b-c_d", valid: true},
		{name: "placeholder", id: "unique()", valid: true},
		{name: "max length", id: strings.Repeat("a", 36), valid: true},
		{name: "too long", id: strings.Repeat("a", 37), valid: false},
		{name: "leading dot", id: ".hidden", valid: false},
		{name: "leading underscore", id: "_x", valid: false},
		{name: "space", id: "a b", valid: false},
		{name: "slash", id: "a/b", valid: false},
		{name: "empty", id: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ids.Custom(tt.id)
			if !tt.valid {
				require.ErrorIs(t, err, ids.ErrInvalidID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, got)
		})
	}
}
