package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavola-pos/dashboard/internal/money"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$12.00", money.Format(decimal.NewFromInt(12)))
	assert.Equal(t, "$0.00", money.Format(decimal.Zero))
	assert.Equal(t, "$9.50", money.Format(decimal.NewFromFloat(9.5)))
	assert.Equal(t, "-$1.50", money.Format(decimal.NewFromFloat(-1.5)))
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	d, err := money.ParsePrice("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", d.StringFixed(2))

	d, err = money.ParsePrice("4")
	require.NoError(t, err)
	assert.Equal(t, "4.00", d.StringFixed(2))

	_, err = money.ParsePrice("-1")
	assert.ErrorIs(t, err, money.ErrNegativeAmount)

	_, err = money.ParsePrice("twelve")
	assert.Error(t, err)
}
