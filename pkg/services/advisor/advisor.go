package advisor

import (
	"fmt"
	"strings"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/de-tools/sonalyze/pkg/services/analysis"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	NoDataInsight = "⚠️ Aucune donnée de décibel trouvée."

	TrafficInsulationInsight  = "Bruit de circulation important → vos fenêtres/portes pourraient être améliorées."
	NeighborInsulationInsight = "Bruits de voisinage fréquents → isolation du plafond/plancher à considérer."
	PlumbingInspectionInsight = "Bruits de plomberie → vérifier tuyauterie ou cloisons légères."

	SummaryInsight = "Résumé à retenir : Comprendre les bruits de votre logement permet d’agir concrètement pour améliorer votre confort sonore."
)

// Recommendations are given whenever an analysis is available.
var Recommendations = []string{
	"Solutions low-cost : joints, rideaux épais, tapis pour réduire le bruit",
	"Travaux : double vitrage, renforcer cloisons, consulter un acousticien si nécessaire",
	"Vous pouvez choisir le niveau d'intervention selon votre budget et vos priorités",
}

// Settings contains the thresholds used to interpret an analysis
type Settings struct {
	// BedroomRoomKeyword selects the bedroom threshold when found in the room name (default: "chambre")
	BedroomRoomKeyword string
	// BedroomComfortDB is the recommended maximum level for bedrooms (default: 25)
	BedroomComfortDB float64
	// DefaultComfortDB is the recommended maximum level for any other room (default: 45)
	DefaultComfortDB float64
	// TrafficAlertCount flags window and door insulation above this many traffic labels (default: 3)
	TrafficAlertCount int
	// NeighborAlertCount flags ceiling and floor insulation above this many neighbor labels (default: 3)
	NeighborAlertCount int
	// PlumbingAlertCount flags piping inspection above this many plumbing labels (default: 0)
	PlumbingAlertCount int
}

// DefaultSettings returns the default interpretation thresholds
func DefaultSettings() Settings {
	return Settings{
		BedroomRoomKeyword: "chambre",
		BedroomComfortDB:   25,
		DefaultComfortDB:   45,
		TrafficAlertCount:  3,
		NeighborAlertCount: 3,
		PlumbingAlertCount: 0,
	}
}

type Advisor struct {
	settings Settings
}

func NewAdvisor(settings Settings) *Advisor {
	return &Advisor{settings: settings}
}

// Advise interprets an analysis for a household.
// A nil analysis yields the no-data insight and no recommendation.
func (a *Advisor) Advise(analysis *domain.Analysis, household domain.Household) domain.Advice {
	if analysis == nil {
		return domain.Advice{
			Insights:        []string{NoDataInsight},
			Recommendations: []string{},
		}
	}

	var insights []string
	insights = append(insights, fmt.Sprintf(
		"Votre logement obtient la note %s basée sur un niveau sonore moyen de %.2f dB.",
		analysis.Grade, analysis.MeanLevel))
	insights = append(insights, a.comfortInsight(analysis.MeanLevel, household.Room))
	insights = append(insights, metricInsights(analysis.Series)...)
	insights = append(insights, familyInsights(analysis.Families)...)
	insights = append(insights, a.structuralInsights(analysis.Families)...)
	insights = append(insights, SummaryInsight)

	return domain.Advice{
		Insights:        insights,
		Recommendations: append([]string(nil), Recommendations...),
	}
}

// ComfortThreshold returns the recommended maximum level for a room.
func (a *Advisor) ComfortThreshold(room string) float64 {
	if strings.Contains(strings.ToLower(room), a.settings.BedroomRoomKeyword) {
		return a.settings.BedroomComfortDB
	}
	return a.settings.DefaultComfortDB
}

func (a *Advisor) comfortInsight(meanLevel float64, room string) string {
	piece := strings.ToLower(room)
	threshold := a.ComfortThreshold(room)

	verdict := "élevé"
	if meanLevel <= threshold {
		verdict = "confortable"
	}
	return fmt.Sprintf("Le niveau sonore est %s pour votre %s (seuil recommandé %g dB).", verdict, piece, threshold)
}

// metricInsights describes every indicator that has samples, in reporting order
func metricInsights(series domain.MetricSeries) []string {
	var insights []string
	for _, metric := range domain.Metrics {
		values := series[metric]
		if len(values) == 0 {
			continue
		}
		insights = append(insights, fmt.Sprintf("%s moyen : %.2f dB, min : %.2f, max : %.2f",
			metric,
			analysis.RoundLevel(stat.Mean(values, nil)),
			floats.Min(values),
			floats.Max(values)))
	}
	return insights
}

// familyInsights reports the families that occurred, in classification order
func familyInsights(counts domain.FamilyCounts) []string {
	var insights []string
	for _, family := range domain.Families {
		count := counts.Count(family)
		if count <= 0 {
			continue
		}
		insights = append(insights, fmt.Sprintf("%d occurrences de bruits liés à %s.",
			count, strings.ToLower(string(family))))
	}
	return insights
}

// structuralInsights flags the probable weaknesses of the dwelling; each check is independent
func (a *Advisor) structuralInsights(counts domain.FamilyCounts) []string {
	var insights []string
	if counts.Count(domain.FamilyTraffic) > a.settings.TrafficAlertCount {
		insights = append(insights, TrafficInsulationInsight)
	}
	if counts.Count(domain.FamilyNeighbor) > a.settings.NeighborAlertCount {
		insights = append(insights, NeighborInsulationInsight)
	}
	if counts.Count(domain.FamilyPlumbing) > a.settings.PlumbingAlertCount {
		insights = append(insights, PlumbingInspectionInsight)
	}
	return insights
}
