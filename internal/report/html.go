package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"orders_report/internal/period"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/report.html.tmpl"),
)

type htmlView struct {
	Label      string
	TopN       int
	Result     Result
	Revenue    string
	Commentary string
	Timezone   string
}

// Subject is the email subject for the given window.
func Subject(window period.Window) string {
	return "Raport zamówień — " + window.Label()
}

// RenderHTML renders the email body. All values are escaped.
func RenderHTML(window period.Window, topN int, res Result, commentary string) (string, error) {
	view := htmlView{
		Label:      window.Label(),
		TopN:       topN,
		Result:     res,
		Revenue:    formatRevenue(res),
		Commentary: strings.TrimSpace(commentary),
		Timezone:   window.Location().String(),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

func formatRevenue(res Result) string {
	amount := res.Revenue.StringFixed(revenuePrecision)
	if len(res.Currencies) == 1 {
		return amount + " " + res.Currencies[0]
	}
	return amount
}
