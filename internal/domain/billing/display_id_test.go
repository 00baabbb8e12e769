package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeDisplayID(t *testing.T) {
	t.Run("single product uses up to 15 chars of its name", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindSales, []string{"Basmati Rice Premium Grade"}, "Acme Retail")
		assert.Equal(t, "S: Basmati Rice Pr → Acme Retail", id)
	})

	t.Run("two products join truncated names", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindSales, []string{"Vegetable Ghee", "Basmati Rice"}, "Acme")
		assert.Equal(t, "S: Vegetable , Basmati Ri → Acme", id)
	})

	t.Run("three or more products collapse to first plus count", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindSales, []string{"Rice", "Oil", "Sugar", "Salt"}, "Acme")
		assert.Equal(t, "S: Rice +3 → Acme", id)
	})

	t.Run("purchase uses reverse arrow", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindPurchase, []string{"Rice"}, "Mills Co")
		assert.Equal(t, "P: Rice ← Mills Co", id)
	})

	t.Run("never exceeds the storage limit", func(t *testing.T) {
		long := strings.Repeat("x", 120)
		id := ComposeDisplayID(InvoiceKindSales, []string{long, long, long}, strings.Repeat("y", 120))
		assert.LessOrEqual(t, len([]rune(id)), DisplayIDMaxLen)
	})

	t.Run("truncation is rune safe for multi-byte names", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindSales, []string{"大米五公斤装优质东北产特级香米"}, "张记粮油批发商行有限公司")
		assert.LessOrEqual(t, len([]rune(id)), DisplayIDMaxLen)
		assert.True(t, strings.HasPrefix(id, "S: "))
	})

	t.Run("empty product list falls back to a random token", func(t *testing.T) {
		id := ComposeDisplayID(InvoiceKindPurchase, nil, "Mills")
		assert.True(t, strings.HasPrefix(id, "PUR-"))
	})
}

func TestRandomDisplayID(t *testing.T) {
	sale := RandomDisplayID(InvoiceKindSales)
	assert.True(t, strings.HasPrefix(sale, "SALE-"))
	assert.Len(t, sale, len("SALE-")+8)

	purchase := RandomDisplayID(InvoiceKindPurchase)
	assert.True(t, strings.HasPrefix(purchase, "PUR-"))

	assert.NotEqual(t, RandomDisplayID(InvoiceKindSales), RandomDisplayID(InvoiceKindSales))
}

func TestAutoPurchaseDisplayID(t *testing.T) {
	id := AutoPurchaseDisplayID()
	assert.True(t, strings.HasPrefix(id, "PUR-"))
	assert.LessOrEqual(t, len(id), DisplayIDMaxLen)
	assert.NotEqual(t, id, AutoPurchaseDisplayID())
}
