package domain

// Family is the household noise source a detected label is attributed to.
type Family string

const (
	FamilyTraffic   Family = "Circulation"
	FamilyAppliance Family = "Électroménager"
	FamilyNeighbor  Family = "Voisinage"
	FamilyPlumbing  Family = "Plomberie"
	FamilyOther     Family = "Autres"
)

// Families lists every family in classification order, catch-all last.
var Families = []Family{
	FamilyTraffic,
	FamilyAppliance,
	FamilyNeighbor,
	FamilyPlumbing,
	FamilyOther,
}

// FamilyCounts maps a family to its number of occurrences.
// Families that were never seen have no entry.
type FamilyCounts map[Family]int

// Count returns the occurrences of f, zero when it was never seen.
func (c FamilyCounts) Count(f Family) int {
	return c[f]
}
