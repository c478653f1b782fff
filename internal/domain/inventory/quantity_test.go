package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/inventory"
)

func TestResolveQuantity_SignoDeterminaCampo(t *testing.T) {
	cases := []struct {
		name      string
		magnitude string
		sign      string
		accepted  string
		rejected  string
	}{
		{"positivo acepta", "5", "+", "5", "0"},
		{"negativo rechaza", "10", "-", "0", "10"},
		{"signo vacío rechaza", "3", "", "0", "3"},
		{"signo desconocido rechaza", "2.5", "x", "0", "2.5"},
		{"decimales aceptados", "12.750", "+", "12.75", "0"},
		{"espacios alrededor", " 7 ", "+", "7", "0"},
		{"cero aceptado", "0", "+", "0", "0"},
		{"cero negativo", "-0", "+", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			split, err := inventory.ResolveQuantity(tc.magnitude, tc.sign)
			require.NoError(t, err)
			assert.True(t, split.Accepted.Equal(decimal.RequireFromString(tc.accepted)), "accepted=%s", split.Accepted)
			assert.True(t, split.Rejected.Equal(decimal.RequireFromString(tc.rejected)), "rejected=%s", split.Rejected)
			assert.True(t, split.Accepted.IsZero() || split.Rejected.IsZero(), "solo un campo puede ser distinto de cero")
		})
	}
}

func TestResolveQuantity_MagnitudInvalida(t *testing.T) {
	for _, magnitude := range []string{"", "abc", "5,0", "1e"} {
		_, err := inventory.ResolveQuantity(magnitude, "+")
		require.Error(t, err, "magnitud %q", magnitude)
		assert.ErrorIs(t, err, domain.ErrNumericFormat)
	}
}

func TestResolveQuantity_MagnitudNegativa(t *testing.T) {
	for _, sign := range []string{"+", "-"} {
		split, err := inventory.ResolveQuantity("-5", sign)
		require.Error(t, err, "signo %q", sign)
		assert.ErrorIs(t, err, domain.ErrNumericFormat)
		assert.Contains(t, err.Error(), "negativo")
		assert.True(t, split.Accepted.IsZero())
		assert.True(t, split.Rejected.IsZero())
	}
}
