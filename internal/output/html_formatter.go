package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/rpgo/fedcalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

// TemplateFuncs are the presentation helpers available to report templates.
var TemplateFuncs = template.FuncMap{
	"curr":        FormatCurrency,
	"pct":         FormatPercentage,
	"mult":        FormatMultiplier,
	"metrics":     KeyMetrics,
	"verdict":     Verdict,
	"assumptions": GenerateAssumptions,
}

var htmlTemplate = template.Must(template.New("fedcalc").Funcs(TemplateFuncs).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(set *domain.ReportSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&buf, "report", set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderResult writes the HTML fragment for a single report, as embedded in
// the full report and returned by the web form handlers.
func RenderResult(w io.Writer, r *domain.Report) error {
	return htmlTemplate.ExecuteTemplate(w, "result", r)
}
