package invoice

import (
	"fmt"
	"strings"

	"wecare/config"
	"wecare/models"
)

// The layout below reproduces the WeCare paper invoice: fixed-width columns,
// 80-character rules, amounts rounded to two decimals at render time only.

var (
	doubleRule = strings.Repeat("=", 80)
	singleRule = strings.Repeat("-", 80)
)

// Render produces the invoice text that goes both to the invoice file and to
// the display. Both sinks receive these exact bytes.
func Render(inv models.Invoice, cfg config.Config) string {
	var b strings.Builder

	b.WriteString("\t \t \t \t " + cfg.ShopName + "\n")
	if inv.Type == models.InvoiceTypeRestock {
		b.WriteString("\t \t \t \t RESTOCK INVOICE\n")
	} else {
		b.WriteString("\t \t " + cfg.ShopAddress + " | Phone No: " + cfg.ShopPhone + "\n")
	}
	b.WriteString(doubleRule + "\n\n")

	b.WriteString("Invoice Number: " + inv.Number + "\n")
	b.WriteString("Date: " + dateStamp(inv) + "\n")
	if inv.Type == models.InvoiceTypeRestock {
		b.WriteString("Supplier: " + inv.Counterparty + "\n\n")
	} else {
		b.WriteString("Customer Name: " + inv.Counterparty + "\n")
		b.WriteString("Phone Number: " + inv.Phone + "\n\n")
	}

	b.WriteString(singleRule + "\n")
	if inv.Type == models.InvoiceTypeRestock {
		fmt.Fprintf(&b, "%-15s %-15s %-5s %-10s %-10s\n", "Product", "Brand", "Qty", "Cost Price", "Amount")
	} else {
		fmt.Fprintf(&b, "%-15s %-15s %-5s %-5s %-10s %-10s\n", "Product", "Brand", "Qty", "Free", "Price", "Amount")
	}
	b.WriteString(singleRule + "\n")

	for _, l := range inv.Lines {
		if inv.Type == models.InvoiceTypeRestock {
			fmt.Fprintf(&b, "%-15s %-15s %-5d %-10s %-10s\n",
				l.Name, l.Brand, l.Quantity, l.UnitPrice.StringFixed(2), l.Amount.StringFixed(2))
		} else {
			fmt.Fprintf(&b, "%-15s %-15s %-5d %-5d %-10s %-10s\n",
				l.Name, l.Brand, l.Quantity, l.Free, l.UnitPrice.StringFixed(2), l.Amount.StringFixed(2))
		}
	}

	if !inv.ShippingFee.IsZero() {
		fmt.Fprintf(&b, "%-45s %s\n", "Shipping Cost:", inv.ShippingFee.StringFixed(2))
	}

	b.WriteString(singleRule + "\n")
	fmt.Fprintf(&b, "%-45s %s\n", "Total Amount:", inv.Total.StringFixed(2))
	b.WriteString(doubleRule + "\n")

	if inv.Type == models.InvoiceTypeSale {
		b.WriteString("\nThank you for shopping with us!\n")
		b.WriteString("Buy 3 Get 1 Free on all products!\n")
	}
	return b.String()
}

// Filename builds the per-transaction invoice file name:
// {NUMBER}_{counterparty}_{Y-M-D}_{HMS}.txt with spaces replaced by
// underscores and unpadded date/time components, matching the original
// output.
func Filename(inv models.Invoice) string {
	t := inv.Date
	day := fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
	clock := fmt.Sprintf("%d%d%d", t.Hour(), t.Minute(), t.Second())
	name := strings.ReplaceAll(inv.Counterparty, " ", "_")
	return fmt.Sprintf("%s_%s_%s_%s.txt", inv.Number, name, day, clock)
}

func dateStamp(inv models.Invoice) string {
	t := inv.Date
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}
