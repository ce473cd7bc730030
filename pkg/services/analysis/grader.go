package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/sonalyze/pkg/models/domain"
)

var ErrNonFiniteLevel = errors.New("noise level is not a finite number")

// gradeBuckets are right-open: a level equal to an upper bound gets the next grade.
var gradeBuckets = []struct {
	upper float64
	grade domain.Grade
}{
	{upper: 30, grade: domain.GradeA},
	{upper: 40, grade: domain.GradeB},
	{upper: 50, grade: domain.GradeC},
	{upper: 60, grade: domain.GradeD},
	{upper: 70, grade: domain.GradeE},
	{upper: 80, grade: domain.GradeF},
}

// GradeFor maps a mean equivalent level in dB to a grade from A to G.
func GradeFor(level float64) (domain.Grade, error) {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFiniteLevel, level)
	}

	for _, bucket := range gradeBuckets {
		if level < bucket.upper {
			return bucket.grade, nil
		}
	}
	return domain.GradeG, nil
}
