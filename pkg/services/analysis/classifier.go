package analysis

import (
	"strings"

	"github.com/de-tools/sonalyze/pkg/models/domain"
)

type familyKeywords struct {
	family   domain.Family
	keywords []string
}

// familyTable is matched top to bottom, the first hit wins.
var familyTable = []familyKeywords{
	{family: domain.FamilyTraffic, keywords: []string{"vehicle", "car", "engine", "traffic"}},
	{family: domain.FamilyAppliance, keywords: []string{"appliance", "washing machine", "fridge"}},
	{family: domain.FamilyNeighbor, keywords: []string{"music", "voice", "steps", "cacophony"}},
	{family: domain.FamilyPlumbing, keywords: []string{"pipe", "plumbing", "water"}},
}

// ClassifyLabel returns the family of a detected sound label.
// Labels matching no keyword fall into domain.FamilyOther.
func ClassifyLabel(label string) domain.Family {
	lower := strings.ToLower(label)
	for _, entry := range familyTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.family
			}
		}
	}
	return domain.FamilyOther
}

// CountFamilies classifies every label and counts the occurrences per family.
func CountFamilies(labels []string) domain.FamilyCounts {
	counts := domain.FamilyCounts{}
	for _, label := range labels {
		counts[ClassifyLabel(label)]++
	}
	return counts
}
