package appraisal

import "time"

// Weights of the seven appraisal components. They sum to exactly 1.00:
// four system metrics (65%) and three manager-review inputs (35%).
const (
	WeightPresence       = 0.20
	WeightProject        = 0.15
	WeightCompliance     = 0.10
	WeightOnsite         = 0.20
	WeightCommunication  = 0.10
	WeightProblemSolving = 0.10
	WeightQuality        = 0.15
)

const (
	// PresenceTargetDays is the fixed target of working days per
	// evaluation period for the presence sub-score denominator.
	PresenceTargetDays = 20

	// WeeklyOnsiteQuota is the expected number of on-site days per ISO week.
	WeeklyOnsiteQuota = 4
)

// Grade labels, ordered from best to worst.
const (
	GradeOutstanding    = "A (Outstanding)"
	GradeExceeds        = "B (Exceeds)"
	GradeMeets          = "C (Meets)"
	GradeImprovement    = "D (Improvement)"
	GradeUnsatisfactory = "E (Unsatisfactory)"
)

// GradeFor maps a final score to its grade band.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return GradeOutstanding
	case score >= 80:
		return GradeExceeds
	case score >= 70:
		return GradeMeets
	case score >= 50:
		return GradeImprovement
	default:
		return GradeUnsatisfactory
	}
}

// Result is one employee's appraisal over a period slice of the ledger.
type Result struct {
	Employee    string
	PeriodStart time.Time
	PeriodEnd   time.Time

	// System sub-scores
	PresenceScore   float64
	ProjectScore    float64
	ComplianceScore float64
	OnsiteScore     float64

	// Manager-review sub-scores, supplied by the evaluator
	Communication  float64
	ProblemSolving float64
	Quality        float64

	FinalScore float64
	Grade      string
}
