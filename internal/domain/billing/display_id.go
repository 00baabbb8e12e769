package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DisplayIDMaxLen is the storage limit for invoice display IDs
const DisplayIDMaxLen = 50

// ComposeDisplayID builds a human-readable invoice identifier from the
// products on the invoice and the counterparty name:
//
//	sales:    "S: <description> → <counterparty>"
//	purchase: "P: <description> ← <counterparty>"
//
// The description is the product name for a single-item invoice, a
// comma-joined pair for two items, and "<first> +N" beyond that. If the
// composed id exceeds 50 characters it falls back to a tighter
// composition, and finally to a random token. Truncation is rune-based
// so multi-byte names are never cut mid-character.
func ComposeDisplayID(kind InvoiceKind, productNames []string, counterpartyName string) string {
	if len(productNames) == 0 {
		return RandomDisplayID(kind)
	}

	var desc string
	switch {
	case len(productNames) == 1:
		desc = truncateRunes(productNames[0], 15)
	case len(productNames) == 2:
		parts := make([]string, len(productNames))
		for i, name := range productNames {
			parts[i] = truncateRunes(name, 10)
		}
		desc = strings.Join(parts, ", ")
	default:
		desc = fmt.Sprintf("%s +%d", truncateRunes(productNames[0], 10), len(productNames)-1)
	}

	id := composeWithArrow(kind, desc, truncateRunes(counterpartyName, 15))
	if len([]rune(id)) <= DisplayIDMaxLen {
		return id
	}

	id = composeWithArrow(kind, truncateRunes(productNames[0], 10), truncateRunes(counterpartyName, 10))
	if len([]rune(id)) <= DisplayIDMaxLen {
		return id
	}

	return RandomDisplayID(kind)
}

// RandomDisplayID returns a guaranteed-unique token identifier, used as
// the last-resort fallback and for the single retry after a uniqueness
// conflict.
func RandomDisplayID(kind InvoiceKind) string {
	token := strings.ToUpper(uuid.New().String()[:8])
	if kind == InvoiceKindSales {
		return "SALE-" + token
	}
	return "PUR-" + token
}

// AutoPurchaseDisplayID returns the identifier used for purchase invoices
// synthesized when a product is created with initial stock. Collisions are
// handled by re-rolling.
func AutoPurchaseDisplayID() string {
	token := strings.ToUpper(uuid.New().String()[:6])
	return fmt.Sprintf("PUR-%d-%s", time.Now().Unix(), token)
}

func composeWithArrow(kind InvoiceKind, desc, party string) string {
	if kind == InvoiceKindSales {
		return fmt.Sprintf("S: %s → %s", desc, party)
	}
	return fmt.Sprintf("P: %s ← %s", desc, party)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
