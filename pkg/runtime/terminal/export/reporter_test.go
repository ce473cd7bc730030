package export

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"

	"github.com/de-tools/sonalyze/pkg/adapters"
	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/de-tools/sonalyze/pkg/services/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	report := &domain.Report{
		Household: domain.Household{Type: "Appartement", Room: "Chambre", Floor: "2"},
		Summary:   &domain.ReportSummary{Grade: domain.GradeC, MeanLevel: 40},
		Interpretation: []string{
			"first insight",
			"second insight",
		},
		Recommendations: []string{"do this", "then that"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	expected := `
===== RAPPORT SONALYZE COMPLÈT =====

Type de logement : Appartement
Pièce analysée : Chambre
Étage : 2

Note globale : C
Niveau moyen : 40.00 dB

===== INTERPRÉTATION DÉTAILLÉE =====
- first insight
- second insight

===== RECOMMANDATIONS =====
- do this
- then that
`
	assert.Equal(t, expected, buf.String())
}

func TestReporter_Handle_NoAnalysis(t *testing.T) {
	household := domain.DefaultHousehold()
	advice := advisor.NewAdvisor(advisor.DefaultSettings()).Advise(nil, household)
	report := adapters.MapAssessmentToReport(household, nil, advice)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(&report))

	out := buf.String()
	assert.Contains(t, out, "Type de logement : inconnu\n")
	assert.Contains(t, out, "Pièce analysée : non renseignée\n")
	assert.Contains(t, out, "Note globale : N/A\n")
	assert.Contains(t, out, "Niveau moyen : N/A dB\n")
	assert.Contains(t, out, "- "+advisor.NoDataInsight+"\n")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("===== RECOMMANDATIONS =====\n")))
}

func TestReporter_Handle_RoundTrip(t *testing.T) {
	gradePattern := regexp.MustCompile(`Note globale : ([A-G])\n`)
	levelPattern := regexp.MustCompile(`Niveau moyen : (-?[0-9]+\.[0-9]+) dB\n`)

	analyses := []domain.Analysis{
		{Grade: domain.GradeA, MeanLevel: 12.3},
		{Grade: domain.GradeB, MeanLevel: 30},
		{Grade: domain.GradeC, MeanLevel: 42.35},
		{Grade: domain.GradeE, MeanLevel: 69.99},
		{Grade: domain.GradeG, MeanLevel: 101.07},
	}

	for _, analysis := range analyses {
		advice := advisor.NewAdvisor(advisor.DefaultSettings()).Advise(&analysis, domain.DefaultHousehold())
		report := adapters.MapAssessmentToReport(domain.DefaultHousehold(), &analysis, advice)

		var buf bytes.Buffer
		require.NoError(t, NewReporter(&buf).Handle(&report))

		grade := gradePattern.FindStringSubmatch(buf.String())
		require.Len(t, grade, 2)
		assert.Equal(t, string(analysis.Grade), grade[1])

		level := levelPattern.FindStringSubmatch(buf.String())
		require.Len(t, level, 2)
		parsed, err := strconv.ParseFloat(level[1], 64)
		require.NoError(t, err)
		assert.Equal(t, analysis.MeanLevel, parsed)
	}
}

func TestReporter_Handle_NilReport(t *testing.T) {
	assert.Error(t, NewReporter(&bytes.Buffer{}).Handle(nil))
}
