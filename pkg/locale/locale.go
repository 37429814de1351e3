// Package locale formatea cifras para la interfaz en español de Chile (es-CL),
// equivalente a toLocaleString("es-CL") del navegador.
package locale

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tag idioma por defecto del dashboard.
var Tag = language.MustParse("es-CL")

// Formatter formatea números con separadores del idioma configurado.
type Formatter struct {
	p          *message.Printer
	groupSep   string
	decimalSep string
}

// New construye un Formatter para tag.
func New(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	return &Formatter{
		p:          p,
		groupSep:   nonDigits(p.Sprint(number.Decimal(1000000))),
		decimalSep: nonDigits(p.Sprint(number.Decimal(0.5, number.MinFractionDigits(1)))),
	}
}

// Default Formatter es-CL.
func Default() *Formatter { return New(Tag) }

// Int formatea un entero con separador de miles (ej: 1.234.567).
func (f *Formatter) Int(n int) string {
	return f.p.Sprint(number.Decimal(n))
}

// Decimal formatea con hasta maxFraction decimales, sin ceros a la derecha.
// No pasa por float64: montos grandes conservan todos sus dígitos.
func (f *Formatter) Decimal(d decimal.Decimal, maxFraction int) string {
	r := d.Round(int32(maxFraction))
	if r.IsNegative() {
		return "-" + f.Decimal(r.Neg(), maxFraction)
	}
	whole := r.Truncate(0)
	out := f.whole(whole)
	// String omite los ceros a la derecha: 0.50 -> "0.5", 0 -> "0".
	if frac := r.Sub(whole).String(); strings.HasPrefix(frac, "0.") {
		out += f.decimalSep + frac[2:]
	}
	return out
}

// whole agrupa la parte entera (no negativa) de a tres dígitos.
func (f *Formatter) whole(d decimal.Decimal) string {
	if b := d.BigInt(); b.IsInt64() {
		return f.p.Sprint(number.Decimal(b.Int64()))
	}
	digits := d.BigInt().String()
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteString(f.groupSep)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// nonDigits primer separador presente en s, o "" si no hay.
func nonDigits(s string) string {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return string(r)
		}
	}
	return ""
}

// Money formatea un monto con prefijo "$" y hasta 2 decimales.
func (f *Formatter) Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + f.Decimal(d.Neg(), 2)
	}
	return "$" + f.Decimal(d, 2)
}
