// Package render turns carts, catalogs and summaries into console output.
// Money is formatted as localized Argentine-peso currency strings; the engine
// itself never formats anything.
package render

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/utafrali/cartsim/internal/domain"
	"github.com/utafrali/cartsim/internal/service"
)

// Renderer writes presentation output for the simulator.
type Renderer struct {
	w       io.Writer
	printer *message.Printer
	unit    currency.Unit
}

// New creates a renderer writing to w, localized for es-AR / ARS.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		printer: message.NewPrinter(language.MustParse("es-AR")),
		unit:    currency.MustParseISO("ARS"),
	}
}

// Money formats an amount as a localized currency string.
func (r *Renderer) Money(amount float64) string {
	return r.printer.Sprint(currency.Symbol(r.unit.Amount(amount)))
}

// Catalog writes the available-products table.
func (r *Renderer) Catalog(products []domain.Product) {
	fmt.Fprintln(r.w, "Catálogo disponible:")

	tw := tabwriter.NewWriter(r.w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tProducto\tPrecio")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, r.Money(p.Price))
	}
	tw.Flush()
	fmt.Fprintln(r.w)
}

// Summary writes the purchase summary: per-line table, discount notice and
// totals.
func (r *Renderer) Summary(s *service.Summary) {
	fmt.Fprintln(r.w, "Resumen de compra:")

	tw := tabwriter.NewWriter(r.w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tProducto\tCantidad\tPrecio Unitario\tSubtotal Línea")
	for _, line := range s.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			line.ProductID, line.Name, line.Quantity,
			r.Money(line.UnitPrice), r.Money(line.LineSubtotal()))
	}
	tw.Flush()

	switch {
	case s.Quote.Rate > 0:
		fmt.Fprintf(r.w, "Descuento aplicado (%d%%): -%s\n",
			roundPercent(s.Quote.Rate), r.Money(s.Subtotal-s.Quote.Total))
	case s.CodeGiven != "":
		fmt.Fprintln(r.w, "No se aplicó descuento.")
	default:
		fmt.Fprintln(r.w, "Sin descuento.")
	}

	fmt.Fprintf(r.w, "Ítems: %d\n", s.ItemCount)
	fmt.Fprintf(r.w, "Subtotal: %s\n", r.Money(s.Subtotal))
	if s.Quote.Rate > 0 {
		fmt.Fprintf(r.w, "Descuento: %d%%\n", roundPercent(s.Quote.Rate))
	}
	fmt.Fprintf(r.w, "TOTAL: %s\n", r.Money(s.Quote.Total))
}

// Notice writes a single user-facing notice line.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func roundPercent(rate float64) int {
	return int(math.Round(rate * 100))
}
