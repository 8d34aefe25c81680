package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"travel-backoffice-be/pkg/labels"

	"github.com/shopspring/decimal"
)

const (
	TemplateBookingReceipt      = "booking_receipt.html"
	TemplateQuickBookingReceipt = "quick_booking_receipt.html"
	TemplateCertificate         = "certificate.html"
	TemplatePoster              = "poster.html"
)

const currencySymbol = "₹"

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders the built-in document templates.
type Engine struct {
	templates *template.Template
}

func NewEngine() (*Engine, error) {
	tmpl, err := template.New("documents").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse templates", err)
	}
	return &Engine{templates: tmpl}, nil
}

func (e *Engine) Render(name string, data interface{}) (string, error) {
	t := e.templates.Lookup(name)
	if t == nil {
		return "", NewRenderError(ErrCodeTemplateMissing, "unknown template "+name, nil)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":    formatMoney,
		"moneyRaw": formatMoneyRaw,
		"percent":  formatPercent,
		"date":     formatDate,
		"dateTime": formatDateTime,
		"label":    labels.Label,
		"upper":    strings.ToUpper,
		"inc":      func(i int) int { return i + 1 },
		"safeURL":  func(s string) template.URL { return template.URL(s) },
		"safeCSS":  func(s string) template.CSS { return template.CSS(s) },
	}
}

// formatMoney renders 1234.5 as "₹1,234.50".
func formatMoney(d decimal.Decimal) string {
	return currencySymbol + formatMoneyRaw(d)
}

func formatMoneyRaw(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	parts := strings.SplitN(d.StringFixed(2), ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "." + decPart
}

func formatPercent(d decimal.Decimal) string {
	return fmt.Sprintf("%s%%", d.Round(2).String())
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006 15:04")
}
