package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("from decimal", func(t *testing.T) {
		m := NewMoney(decimal.NewFromFloat(19.99))
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("from float", func(t *testing.T) {
		m := NewMoneyFromFloat(42.5)
		assert.Equal(t, "42.50", m.String())
	})

	t.Run("from int", func(t *testing.T) {
		m := NewMoneyFromInt(100)
		assert.Equal(t, "100.00", m.String())
	})

	t.Run("from string", func(t *testing.T) {
		m, err := NewMoneyFromString("12.345")
		require.NoError(t, err)
		assert.Equal(t, "12.35", m.String())
		assert.Equal(t, "12.345", m.StringFixed(3))
	})

	t.Run("from invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number")
		assert.Error(t, err)
	})

	t.Run("zero", func(t *testing.T) {
		m := ZeroMoney()
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
		assert.False(t, m.IsNegative())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyFromFloat(10.50)
	b := NewMoneyFromFloat(2.25)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "12.75", a.Add(b).String())
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, "8.25", a.Subtract(b).String())
	})

	t.Run("subtract below zero", func(t *testing.T) {
		result := b.Subtract(a)
		assert.True(t, result.IsNegative())
		assert.Equal(t, "-8.25", result.String())
	})

	t.Run("multiply by int", func(t *testing.T) {
		assert.Equal(t, "31.50", a.MultiplyByInt(3).String())
	})

	t.Run("negate", func(t *testing.T) {
		assert.Equal(t, "-10.50", a.Negate().String())
		assert.Equal(t, "10.50", a.Negate().Negate().String())
	})

	t.Run("round", func(t *testing.T) {
		m, err := NewMoneyFromString("1.005")
		require.NoError(t, err)
		assert.Equal(t, "1.01", m.Round(2).String())
	})

	t.Run("immutability", func(t *testing.T) {
		a.Add(b)
		a.Negate()
		assert.Equal(t, "10.50", a.String())
	})
}

func TestMoney_Comparison(t *testing.T) {
	small := NewMoneyFromInt(5)
	large := NewMoneyFromInt(8)
	alsoSmall := NewMoneyFromFloat(5.00)

	assert.True(t, small.Equals(alsoSmall))
	assert.False(t, small.Equals(large))

	assert.True(t, small.LessThan(large))
	assert.False(t, large.LessThan(small))

	assert.True(t, small.LessThanOrEqual(alsoSmall))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.GreaterThanOrEqual(alsoSmall))
	assert.False(t, small.GreaterThan(large))
}

func TestMoney_Accessors(t *testing.T) {
	m := NewMoneyFromFloat(7.5)

	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(7.5)))
	assert.InDelta(t, 7.5, m.Float64(), 0.0001)
	assert.True(t, m.IsPositive())
}

func TestMoney_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		m, err := NewMoneyFromString("199.90")
		require.NoError(t, err)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, `"199.9"`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`"55.25"`), &m))
		assert.Equal(t, "55.25", m.String())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
		assert.Error(t, json.Unmarshal([]byte(`123`), &m))
	})

	t.Run("struct field", func(t *testing.T) {
		type priced struct {
			Price Money `json:"price"`
		}
		data, err := json.Marshal(priced{Price: NewMoneyFromFloat(40)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":"40"}`, string(data))

		var decoded priced
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "40.00", decoded.Price.String())
	})
}

func TestMoney_SQL(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		m := NewMoneyFromFloat(3.14)
		v, err := m.Value()
		require.NoError(t, err)
		assert.Equal(t, "3.14", v)
	})

	t.Run("scan string", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("25.75"))
		assert.Equal(t, "25.75", m.String())
	})

	t.Run("scan bytes", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan([]byte("10.00")))
		assert.Equal(t, "10.00", m.String())
	})

	t.Run("scan float", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(float64(9.99)))
		assert.Equal(t, "9.99", m.String())
	})

	t.Run("scan nil", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})

	t.Run("scan invalid string", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan("not-money"))
	})
}
