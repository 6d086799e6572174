package appraisal

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
)

// ========================================
// APPRAISAL DTOs
// ========================================

// Request asks for one employee's appraisal over the rows of a snapshot that
// pass the supplied ledger filter. Manual scores come from the evaluator.
type Request struct {
	Employee       string  `json:"employee"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problem_solving"`
	Quality        float64 `json:"quality"`
}

func (r *Request) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Employee) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if !validator.IsValidScore(r.Communication) {
		errs = append(errs, validator.ValidationError{
			Field:   "communication",
			Message: "communication must be between 0 and 100",
		})
	}

	if !validator.IsValidScore(r.ProblemSolving) {
		errs = append(errs, validator.ValidationError{
			Field:   "problem_solving",
			Message: "problem_solving must be between 0 and 100",
		})
	}

	if !validator.IsValidScore(r.Quality) {
		errs = append(errs, validator.ValidationError{
			Field:   "quality",
			Message: "quality must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Response mirrors Result with stable field order and labels; downstream
// report consumers depend on both.
type Response struct {
	Employee    string `json:"employee"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	PresenceScore   float64 `json:"presence_score"`
	ProjectScore    float64 `json:"project_score"`
	ComplianceScore float64 `json:"compliance_score"`
	OnsiteScore     float64 `json:"onsite_score"`

	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problem_solving"`
	Quality        float64 `json:"quality"`

	FinalScore float64 `json:"final_score"`
	Grade      string  `json:"grade"`

	Report string `json:"report"`
}

func NewResponse(result Result) Response {
	return Response{
		Employee:        result.Employee,
		PeriodStart:     result.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       result.PeriodEnd.Format("2006-01-02"),
		PresenceScore:   result.PresenceScore,
		ProjectScore:    result.ProjectScore,
		ComplianceScore: result.ComplianceScore,
		OnsiteScore:     result.OnsiteScore,
		Communication:   result.Communication,
		ProblemSolving:  result.ProblemSolving,
		Quality:         result.Quality,
		FinalScore:      result.FinalScore,
		Grade:           result.Grade,
		Report:          result.Report(),
	}
}

// Report renders the plain-text appraisal export. Section order and labels
// are stable.
func (r Result) Report() string {
	var b strings.Builder

	b.WriteString("PERFORMANCE APPRAISAL REPORT\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Employee: %s\n", r.Employee)
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "Period: %s to %s\n", r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"))
	b.WriteString("\n")
	b.WriteString("SYSTEM METRICS (65%):\n")
	fmt.Fprintf(&b, "- KPI (Presence): %.2f\n", r.PresenceScore)
	fmt.Fprintf(&b, "- Project Score: %.2f\n", r.ProjectScore)
	fmt.Fprintf(&b, "- Compliance: %.2f\n", r.ComplianceScore)
	fmt.Fprintf(&b, "- WFO Score: %.2f\n", r.OnsiteScore)
	b.WriteString("\n")
	b.WriteString("MANAGER REVIEW (35%):\n")
	fmt.Fprintf(&b, "- Communication: %.0f\n", r.Communication)
	fmt.Fprintf(&b, "- Problem Solving: %.0f\n", r.ProblemSolving)
	fmt.Fprintf(&b, "- Quality Of Work: %.0f\n", r.Quality)
	b.WriteString("\n")
	b.WriteString("FINAL RESULT:\n")
	fmt.Fprintf(&b, "- Total Score: %.2f\n", r.FinalScore)
	fmt.Fprintf(&b, "- Grade: %s\n", r.Grade)

	return b.String()
}
