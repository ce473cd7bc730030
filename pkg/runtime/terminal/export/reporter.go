package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/sonalyze/pkg/models/domain"
)

const NotAvailable = "N/A"

const reportTemplate = `
===== RAPPORT SONALYZE COMPLÈT =====

Type de logement : {{.Household.Type}}
Pièce analysée : {{.Household.Room}}
Étage : {{.Household.Floor}}

Note globale : {{with .Summary}}{{.Grade}}{{else}}{{notAvailable}}{{end}}
Niveau moyen : {{with .Summary}}{{level .MeanLevel}}{{else}}{{notAvailable}}{{end}} dB

===== INTERPRÉTATION DÉTAILLÉE =====
{{range .Interpretation}}- {{.}}
{{end}}
===== RECOMMANDATIONS =====
{{range .Recommendations}}- {{.}}
{{end}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"notAvailable": func() string { return NotAvailable },
	"level":        func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(reportTemplate))

// Reporter renders household noise reports as plain text
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("report is nil")
	}
	if err := tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
