// Package checkout renders a cart into the WhatsApp order flow: an itemized
// text message and a wa.me deep link pre-filled with it. No network call is
// made here; the client opens the returned URL in a new browsing context.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/luxebeaute/storefront/internal/domain"
)

// DefaultBusinessPhone is the fallback order recipient, in international
// format without the leading plus, as wa.me expects.
const DefaultBusinessPhone = "212612345678"

// CustomerInfo carries the delivery details included in the order message.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// Message formats the order as human-readable text. Callers must reject an
// empty cart before invoking it; an empty order is a user-facing validation
// error, not a formatter concern.
func Message(items []domain.CartItem, total float64, customer CustomerInfo) string {
	var lines []string
	for _, item := range items {
		label := item.Product.Name
		if item.Product.Brand != "" {
			label = item.Product.Brand + " - " + item.Product.Name
		}
		lines = append(lines, fmt.Sprintf("• %s\n  Quantité: %d x %s€ = %s€",
			label, item.Quantity, formatAmount(item.Product.Price), formatAmount(item.LineTotal())))
	}

	msg := fmt.Sprintf(`*NOUVELLE COMMANDE - LUXE BEAUTÉ*

*Informations client:*
Nom: %s
Téléphone: %s
Adresse: %s, %s

*Produits commandés:*
%s

*Résumé commande:*
Sous-total: %s€
Frais de port: Gratuit
*Total: %s€*

Merci pour votre commande!`,
		customer.Name, customer.Phone, customer.Address, customer.City,
		strings.Join(lines, "\n"),
		formatAmount(total), formatAmount(total))

	return msg
}

// Link builds the wa.me deep link carrying the URL-encoded order message.
func Link(items []domain.CartItem, total float64, customer CustomerInfo, businessPhone string) string {
	if businessPhone == "" {
		businessPhone = DefaultBusinessPhone
	}
	msg := Message(items, total, customer)
	return fmt.Sprintf("https://wa.me/%s?text=%s", businessPhone, url.QueryEscape(msg))
}

// formatAmount renders a price without trailing zeros: 135 -> "135",
// 45.5 -> "45.5".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
