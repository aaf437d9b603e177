package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/dolphnet-api/pkg/money"
)

func TestUSD_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$45,280.90", money.USD(decimal.RequireFromString("45280.9")))
	assert.Equal(t, "$1,089.90", money.USD(decimal.RequireFromString("1089.90")))
	assert.Equal(t, "$120.75", money.USD(decimal.RequireFromString("120.75")))
}

func TestUSD_ConservaPrecisionDelDecimal(t *testing.T) {
	assert.Equal(t, "$12,345,678,901,234,567.89", money.USD(decimal.RequireFromString("12345678901234567.891")))
	assert.Equal(t, "$0.01", money.USD(decimal.RequireFromString("0.005")))
	assert.Equal(t, "$0.00", money.USD(decimal.Zero))
	assert.Equal(t, "-$3.50", money.USD(decimal.RequireFromString("-3.5")))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "375", money.Count(375))
	assert.Equal(t, "1,375", money.Count(1375))
}

func TestChange(t *testing.T) {
	assert.Equal(t, "+12.5% from last month", money.Change(decimal.RequireFromString("12.5"), "last month"))
	assert.Equal(t, "-3% from last week", money.Change(decimal.NewFromInt(-3), "last week"))
	assert.Equal(t, "4.8%", money.Percent(decimal.RequireFromString("4.8")))
}
