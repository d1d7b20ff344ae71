package validation

import "fmt"

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema   Level = "schema"
	LevelSemantic Level = "semantic"
	LevelSpatial  Level = "spatial"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output. Scene building never fails on
// a report; errors mark input that had to be discarded, warnings mark input
// that was repaired.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Clean reports whether there are neither errors nor warnings.
func (r *Report) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// At returns the findings of any severity recorded against a directive
// path, errors first.
func (r *Report) At(path string) []Result {
	var out []Result
	for _, list := range [][]Result{r.Errors, r.Warnings, r.Info} {
		for _, res := range list {
			if res.Path == path {
				out = append(out, res)
			}
		}
	}
	return out
}

// Paths returns the distinct paths with errors or warnings, in report order.
func (r *Report) Paths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]Result{r.Errors, r.Warnings} {
		for _, res := range list {
			if res.Path != "" && !seen[res.Path] {
				seen[res.Path] = true
				out = append(out, res.Path)
			}
		}
	}
	return out
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
