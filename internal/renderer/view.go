package renderer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/pkg/locale"
	"report-srv/pkg/util"

	"github.com/iancoleman/strcase"
)

type labels struct {
	GeneratedOn string
	Parameters  string
	Total       string
	Rows        string
	NoData      string
	Page        string
}

var labelsByLang = map[string]labels{
	locale.EN: {
		GeneratedOn: "Generated on",
		Parameters:  "Parameters",
		Total:       "Total",
		Rows:        "Rows",
		NoData:      "No data for the selected parameters",
		Page:        "Page",
	},
	locale.FR: {
		GeneratedOn: "Généré le",
		Parameters:  "Paramètres",
		Total:       "Total",
		Rows:        "Lignes",
		NoData:      "Aucune donnée pour les paramètres sélectionnés",
		Page:        "Page",
	},
}

type viewParam struct {
	Label string
	Value string
}

type viewColumn struct {
	Label string
	Align string
}

type viewCell struct {
	Value string
	Align string
}

// view is the renderer independent shape of a printed report. HTML and both PDF engines draw it.
type view struct {
	Lang        string
	Title       string
	Labels      labels
	Parameters  []viewParam
	Columns     []viewColumn
	Rows        [][]viewCell
	RowCount    int
	Total       string
	GeneratedAt string
}

// ColSpan is the width of the empty-table row.
func (v view) ColSpan() int {
	if len(v.Columns) == 0 {
		return 1
	}
	return len(v.Columns)
}

func buildView(in Input) view {
	lang := locale.ParseLang(in.Lang)
	v := view{
		Lang:        lang,
		Title:       in.Title,
		Labels:      labelsByLang[lang],
		GeneratedAt: util.DateTimeToStr(in.GeneratedAt),
	}
	if v.Title == "" {
		v.Title = in.ReportID
	}

	for _, k := range util.SortedKeys(in.Parameters) {
		v.Parameters = append(v.Parameters, viewParam{
			Label: humanize(k),
			Value: formatValue(in.Parameters[k], paramFormat(k)),
		})
	}

	rows := in.Data.Rows()
	columns := in.Columns
	if len(columns) == 0 && len(rows) > 0 {
		for _, k := range util.SortedKeys(rows[0]) {
			columns = append(columns, catalog.Column{Key: k, Label: humanize(k), Format: catalog.FormatText})
		}
	}
	for _, col := range columns {
		v.Columns = append(v.Columns, viewColumn{Label: col.Label, Align: align(col.Format)})
	}

	for _, row := range rows {
		cells := make([]viewCell, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, viewCell{Value: formatValue(row[col.Key], col.Format), Align: align(col.Format)})
		}
		v.Rows = append(v.Rows, cells)
	}
	v.RowCount = len(rows)

	if total, ok := in.Data[model.DatasetTotalKey]; ok {
		v.Total = formatValue(total, catalog.FormatNumber)
	}
	return v
}

func paramFormat(name string) string {
	if catalog.IsDateName(name) {
		return catalog.FormatDate
	}
	return catalog.FormatText
}

func align(format string) string {
	switch format {
	case catalog.FormatNumber, catalog.FormatCurrency:
		return "right"
	default:
		return "left"
	}
}

// humanize turns dateFrom or depot_uuid into "Date From" or "Depot Uuid".
func humanize(key string) string {
	words := strings.Fields(strcase.ToDelimited(key, ' '))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func formatValue(v any, format string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		if format == catalog.FormatDate {
			return util.DateToDisplay(x)
		}
		return util.DateTimeToStr(x)
	case []byte:
		return formatValue(string(x), format)
	case string:
		switch format {
		case catalog.FormatDate:
			if t, err := util.ParseDate(x); err == nil {
				return util.DateToDisplay(t)
			}
		case catalog.FormatNumber, catalog.FormatCurrency:
			if f, err := strconv.ParseFloat(x, 64); err == nil {
				return formatNumber(f, format)
			}
		}
		return x
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return formatNumber(f, format)
		}
		return x.String()
	case float64:
		return formatNumber(x, format)
	case float32:
		return formatNumber(float64(x), format)
	case int:
		return formatNumber(float64(x), format)
	case int32:
		return formatNumber(float64(x), format)
	case int64:
		return formatNumber(float64(x), format)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func formatNumber(f float64, format string) string {
	if format != catalog.FormatCurrency && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return groupThousands(strconv.FormatInt(int64(f), 10))
	}
	return groupThousands(strconv.FormatFloat(f, 'f', 2, 64))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

func fileName(in Input, key string) string {
	base := strcase.ToKebab(in.ReportID)
	if base == "" {
		base = "report"
	}
	return fmt.Sprintf("%s-%s.%s", base, in.GeneratedAt.Format("20060102"), key)
}
