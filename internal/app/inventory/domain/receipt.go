package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReceiptTimeLayout is the layout of the Date line.
const ReceiptTimeLayout = "2006-01-02 15:04:05"

// RenderReceipt formats the order as text. An empty order still renders,
// with no product lines and a zero total; refusing it is the caller's call.
//
//	Order Receipt
//	Date: 2024-01-01 00:00:00
//
//	Products:
//	Apple x2: $3.00
//
//	Total Price: $3.00
func (o *Order) RenderReceipt(now time.Time) string {
	var b strings.Builder

	b.WriteString("Order Receipt\n")
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format(ReceiptTimeLayout))
	b.WriteString("Products:\n")
	for _, line := range o.lines {
		fmt.Fprintf(&b, "%s x%d: $%s\n", line.Product.Name(), line.Quantity, line.Amount())
	}
	fmt.Fprintf(&b, "\nTotal Price: $%s", o.Total())

	return b.String()
}
