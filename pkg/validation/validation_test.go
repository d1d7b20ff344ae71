package validation

import (
	"slices"
	"testing"
)

func TestNewReportIsCleanAndValid(t *testing.T) {
	r := NewReport()
	if !r.Valid || !r.Clean() {
		t.Error("new report should be valid and clean")
	}
	if r.Errors == nil || r.Warnings == nil || r.Info == nil {
		t.Error("new report should carry empty, non-nil slices")
	}
}

func TestSeverityAndValidity(t *testing.T) {
	tests := []struct {
		name     string
		add      func(*Report, Result)
		severity Severity
		valid    bool
		clean    bool
		summary  string
	}{
		{"error", (*Report).AddError, SeverityError, false, false, "1 errors, 0 warnings, 0 info"},
		{"warning", (*Report).AddWarning, SeverityWarning, true, false, "0 errors, 1 warnings, 0 info"},
		{"info", (*Report).AddInfo, SeverityInfo, true, true, "0 errors, 0 warnings, 1 info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport()
			tt.add(r, Result{Level: LevelSemantic, Message: "zone b has no label", Path: "zones[1].label"})
			if r.Valid != tt.valid || r.Clean() != tt.clean {
				t.Errorf("valid=%v clean=%v, want %v/%v", r.Valid, r.Clean(), tt.valid, tt.clean)
			}
			if r.Summary != tt.summary {
				t.Errorf("unexpected summary: %s", r.Summary)
			}
			got := r.At("zones[1].label")
			if len(got) != 1 || got[0].Severity != tt.severity {
				t.Errorf("expected one %s at path, got %v", tt.severity, got)
			}
		})
	}
}

func TestMergeCombinesStages(t *testing.T) {
	schema := NewReport()
	schema.AddWarning(Result{Level: LevelSchema, Message: "cameraAngle not in enum", Path: "cameraAngle"})

	semantic := NewReport()
	semantic.AddError(Result{Level: LevelSemantic, Message: "zone width is not a number", Path: "zones[2].w"})
	semantic.AddWarning(Result{Level: LevelSemantic, Message: "unknown focus zone", Path: "focusZone"})
	semantic.AddInfo(Result{Level: LevelSpatial, Message: "3 items placed"})

	schema.Merge(semantic)

	if schema.Valid {
		t.Error("merged report should be invalid when other has errors")
	}
	if schema.Summary != "1 errors, 2 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", schema.Summary)
	}
	want := []string{"zones[2].w", "cameraAngle", "focusZone"}
	if got := schema.Paths(); !slices.Equal(got, want) {
		t.Errorf("paths %v, want %v", got, want)
	}
}

func TestMergeKeepsValidity(t *testing.T) {
	r := NewReport()
	other := NewReport()
	other.AddInfo(Result{Level: LevelSpatial, Message: "dropped 1 item"})
	r.Merge(other)
	r.Merge(nil)
	if !r.Valid || len(r.Info) != 1 {
		t.Errorf("expected valid report with 1 info, got %+v", r)
	}
}

func TestAtOrdersBySeverity(t *testing.T) {
	r := NewReport()
	r.AddInfo(Result{Level: LevelSemantic, Message: "defaulted colour", Path: "zones[0].color"})
	r.AddWarning(Result{Level: LevelSchema, Message: "bad hex", Path: "zones[0].color"})
	got := r.At("zones[0].color")
	if len(got) != 2 || got[0].Severity != SeverityWarning {
		t.Errorf("expected warning before info, got %v", got)
	}
	if len(r.At("zones[9]")) != 0 {
		t.Error("unknown path should have no findings")
	}
}
