package main

import (
	"fmt"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/camera"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/diff"
	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/validation"
)

func printResults(title string, rs []validation.Result, detail bool) {
	if len(rs) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", title, len(rs))
	for _, r := range rs {
		fmt.Printf("  [%s] %s\n", r.Level, r.Message)
		if !detail {
			continue
		}
		if r.Path != "" {
			fmt.Printf("    -> %s = %v\n", r.Path, r.ActualValue)
		}
		if r.Expected != "" {
			fmt.Printf("    expected: %s\n", r.Expected)
		}
		if r.ConflictWith != "" {
			fmt.Printf("    conflicts with: %s\n", r.ConflictWith)
		}
		for _, s := range r.Suggestions {
			fmt.Printf("    * %s\n", s)
		}
	}
	fmt.Println()
}

func printValidationReport(r *validation.Report) {
	printResults("ERRORS", r.Errors, true)
	printResults("WARNINGS", r.Warnings, true)
	printResults("INFO", r.Info, false)

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printDiff(d diff.Result, sameKey bool) {
	for _, z := range d.Added {
		fmt.Printf("+ %-16s %-20s at (%.1f, %.1f) %gx%g %s\n", z.ID, z.Label, z.X, z.Z, z.W, z.D, z.Color)
	}
	for _, id := range d.Removed {
		fmt.Printf("- %s\n", id)
	}
	for _, u := range d.Updated {
		fmt.Printf("~ %s\n", u.ID)
		b, a := u.Before, u.After
		if b.X != a.X || b.Z != a.Z {
			fmt.Printf("    position (%.1f, %.1f) -> (%.1f, %.1f)\n", b.X, b.Z, a.X, a.Z)
		}
		if b.W != a.W || b.D != a.D {
			fmt.Printf("    size     %gx%g -> %gx%g\n", b.W, b.D, a.W, a.D)
		}
		if b.Color != a.Color {
			fmt.Printf("    color    %s -> %s\n", b.Color, a.Color)
		}
		if b.Label != a.Label {
			fmt.Printf("    label    %q -> %q\n", b.Label, a.Label)
		}
	}
	fmt.Printf("\n%d added, %d removed, %d updated, %d unchanged\n",
		len(d.Added), len(d.Removed), len(d.Updated), len(d.Unchanged))
	if sameKey {
		fmt.Println("config key unchanged: the engine would not rebuild")
	}
}

func printCameraHeader(s camera.State) {
	fmt.Printf("source: %s", s.Source)
	if s.Focus != "" {
		fmt.Printf("  focus: %s", s.Focus)
	} else {
		fmt.Printf("  preset: %s", s.Preset)
	}
	t := s.Target
	fmt.Printf("\ntarget: pos (%.2f, %.2f, %.2f) look (%.2f, %.2f, %.2f) fov %.1f\n\n",
		t.Position.X, t.Position.Y, t.Position.Z, t.LookAt.X, t.LookAt.Y, t.LookAt.Z, t.FOV)
	fmt.Printf("%6s %24s %8s %10s\n", "frame", "position", "fov", "remaining")
}

func printCameraFrame(frame int, s camera.State) {
	p := s.Live.Position
	pos := fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
	fmt.Printf("%6d %24s %8.2f %10.4f\n", frame, pos, s.Live.FOV, s.Remaining())
}
