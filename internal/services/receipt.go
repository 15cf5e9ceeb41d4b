package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
)

const receiptFooter = "Merci de votre visite !"

type ReceiptLine struct {
	Name     string
	Qty      int
	Subtotal string
}

// Receipt is a print-ready view of a persisted sale. Building it has no
// side effects; rendering and printing are delegated outward.
type Receipt struct {
	ShopName      string
	Date          string
	InvoiceNumber string
	Lines         []ReceiptLine
	Total         string
	Footer        string
}

// BuildReceipt formats a persisted sale for printing. shop may be nil,
// in which case the user's shop name from the sale owner is unknown and
// a generic header is used.
func BuildReceipt(sale domain.Sale, shop *domain.Shop) Receipt {
	shopName := "Ma boutique"
	if shop != nil && shop.Name != "" {
		shopName = shop.Name
	}

	date := sale.Date
	if t, err := time.Parse(time.RFC3339, sale.Date); err == nil {
		date = t.Local().Format("02/01/2006 15:04")
	}

	r := Receipt{
		ShopName:      shopName,
		Date:          date,
		InvoiceNumber: sale.InvoiceNumber,
		Total:         domain.FormatFCFA(sale.Total),
		Footer:        receiptFooter,
	}
	for _, it := range sale.Items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:     it.Name,
			Qty:      it.Qty,
			Subtotal: domain.FormatFCFA(it.Subtotal()),
		})
	}
	return r
}

// Text renders the plain-text ticket for thermal printers.
func (r Receipt) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\nFacture: %s\n", r.ShopName, r.Date, r.InvoiceNumber)
	b.WriteString("--------------------------------\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s x%d  %s\n", l.Name, l.Qty, l.Subtotal)
	}
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "Total: %s\n%s\n", r.Total, r.Footer)
	return b.String()
}
