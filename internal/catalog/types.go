package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Column formats understood by the renderers.
const (
	FormatText     = "text"
	FormatDate     = "date"
	FormatNumber   = "number"
	FormatCurrency = "currency"
)

// Column is one printed column of a report table.
type Column struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Format string `yaml:"format"`
}

// Definition describes one logical report. The same definition backs every renderer.
type Definition struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// URL is the route the client uses for this report, e.g. reports/finance/unbalanced_invoice_payments.
	URL string `yaml:"url"`
	// Keys are the top level keys the JSON rendering promises.
	Keys           []string `yaml:"keys"`
	Columns        []Column `yaml:"columns"`
	DateParams     []string `yaml:"date_params"`
	RequiredParams []string `yaml:"required_params"`
	// Query is run with QueryParams bound positionally.
	Query       string   `yaml:"query"`
	QueryParams []string `yaml:"query_params"`
	// TotalColumn is summed into the dataset total. Empty means the row count.
	TotalColumn string `yaml:"total_column"`
}

// IsDateParam reports whether name is declared as a date parameter.
func (d Definition) IsDateParam(name string) bool {
	for _, p := range d.DateParams {
		if p == name {
			return true
		}
	}
	return false
}

// IsDateName reports whether a parameter name reads as a date: date, dateFrom, date_to,
// invoiceDate or invoice_date. Names that merely contain "date" (candidate, updated_by) do not.
func IsDateName(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case lower == "date":
		return true
	case strings.HasPrefix(lower, "date"):
		r, _ := utf8.DecodeRuneInString(name[len("date"):])
		return r == '_' || unicode.IsUpper(r)
	case strings.HasSuffix(name, "Date"), strings.HasSuffix(lower, "_date"):
		return true
	}
	return false
}

type file struct {
	Reports []Definition `yaml:"reports"`
}
