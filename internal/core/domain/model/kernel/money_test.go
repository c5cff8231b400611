package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		m := mustMoney(t, "19.99")

		assert.Equal(t, "19.99", m.String())
		assert.True(t, m.IsPositive())
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("nineteen")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("MulInt keeps the result exact", func(t *testing.T) {
		m := mustMoney(t, "5.005").MulInt(3)

		assert.Equal(t, "15.015", m.String())
	})

	t.Run("Add keeps the result exact", func(t *testing.T) {
		sum := mustMoney(t, "19.99").Add(mustMoney(t, "0.015"))

		assert.Equal(t, "20.005", sum.String())
	})
}

func TestMoney_Round2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"44.985", "44.99"}, // half rounds up
		{"44.984", "44.98"},
		{"44.995", "45.00"},
		{"44.00", "44.00"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := mustMoney(t, tc.in).Round2()
			assert.Equal(t, tc.want, got.StringFixed2())
		})
	}
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
		assert.False(t, m.IsNegative())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("IsEqual compares numerically across scales", func(t *testing.T) {
		assert.True(t, mustMoney(t, "5.0").IsEqual(mustMoney(t, "5.00")))
	})

	t.Run("negative amounts are detected", func(t *testing.T) {
		m := kernel.NewMoney(decimal.NewFromInt(-1))
		assert.True(t, m.IsNegative())
	})
}
