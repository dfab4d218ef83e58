package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateClick(t *testing.T) {
	t.Run("valid clicks", func(t *testing.T) {
		valid := [][2]string{
			{"user_123", "Cooking"},
			{"u", "grocery_shopping"},
			{"user-1", "  spaced  "},
			{"   ", "Cooking"},
		}
		for _, v := range valid {
			require.NoError(t, ValidateClick(v[0], v[1]), "expected valid click: %v", v)
		}
	})

	t.Run("invalid clicks", func(t *testing.T) {
		invalid := [][2]string{
			{"", "Cooking"},
			{"user_123", ""},
			{"", ""},
		}
		for _, v := range invalid {
			require.ErrorIs(t, ValidateClick(v[0], v[1]), ErrInvalidClick, "expected invalid click: %v", v)
		}
	})
}
