package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.567")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", m.Round().String())

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100.50)
	b := NewMoney(0.25)

	assert.Equal(t, "100.75", a.Add(b).String())
	assert.Equal(t, "100.25", a.Sub(b).String())
	assert.Equal(t, "301.50", a.MulInt(3).String())
	assert.Equal(t, "201.00", a.MulFloat(2).String())
	assert.Equal(t, "10.05", a.Percent(10).String())
}

func TestComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.LessThan(b))
	assert.True(t, a.GreaterThanOrEqual(NewMoney(10)))
	assert.True(t, a.Equal(NewMoney(10)))
	assert.True(t, Zero().IsZero())
	assert.True(t, a.IsPositive())
	assert.False(t, Zero().IsPositive())
}

func TestSum(t *testing.T) {
	total := Sum(NewMoney(1.10), NewMoney(2.20), NewMoney(3.30))
	assert.Equal(t, "6.60", total.String())
	assert.Equal(t, "0.00", Sum().String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1500.00", NewMoney(1500).Format())
	assert.Equal(t, "$-25.50", NewMoney(-25.5).Format())
}
