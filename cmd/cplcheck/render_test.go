package main

import (
	"fmt"
	"strings"
	"testing"

	"cplcheck/internal/cplxml"
	"cplcheck/internal/preflight"
	"cplcheck/internal/report"
)

func TestRenderReportLinesValid(t *testing.T) {
	rep := report.Report{
		Path:          "feature.xml",
		Valid:         true,
		CompositionID: "0b7c5a7e-54b9-4d8c-9f4e-0f2b8d1b6a10",
		EditRate:      "24/1",
		Tracks:        make([]report.TrackSummary, 2),
	}
	lines := renderReportLines(rep, false)
	want := "PASS  feature.xml  0b7c5a7e-54b9-4d8c-9f4e-0f2b8d1b6a10  2 tracks @ 24/1"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("unexpected lines %q", lines)
	}

	rep.Title = "Example Feature"
	lines = renderReportLines(rep, true)
	if !strings.HasPrefix(lines[0], ansiGreen+"PASS"+ansiReset+"  feature.xml  \"Example Feature\"") {
		t.Fatalf("unexpected colored line %q", lines[0])
	}
}

func TestRenderReportLinesCapsProblems(t *testing.T) {
	rep := report.Report{
		Path:      "broken.xml",
		ErrorCode: report.CodeSchemaValidation,
		Error:     "composition playlist schema validation failed",
	}
	for idx := range maxProblemLines + 2 {
		rep.Problems = append(rep.Problems, cplxml.Problem{
			Path:    fmt.Sprintf("/CompositionPlaylist/SegmentList/Segment[%d]", idx+1),
			Code:    "cvc-complex-type.2.4",
			Message: "missing Id",
		})
	}

	lines := renderReportLines(rep, false)
	if len(lines) != maxProblemLines+2 {
		t.Fatalf("expected header, %d problems and a remainder line, got %q", maxProblemLines, lines)
	}
	if lines[0] != "FAIL  broken.xml  schema_validation: 7 schema problems" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "      /CompositionPlaylist/SegmentList/Segment[1]: [cvc-complex-type.2.4] missing Id" {
		t.Fatalf("unexpected problem line %q", lines[1])
	}
	if last := lines[len(lines)-1]; last != "      ... and 2 more" {
		t.Fatalf("unexpected remainder line %q", last)
	}
}

func TestRenderReportLinesCoreError(t *testing.T) {
	rep := report.Report{
		Path:      "feature.xml",
		ErrorCode: report.CodeDuplicateTrackID,
		Error:     "duplicate track id",
	}
	lines := renderReportLines(rep, true)
	if len(lines) != 1 || lines[0] != ansiRed+"FAIL"+ansiReset+"  feature.xml  duplicate_track_id: duplicate track id" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestRenderCheckLine(t *testing.T) {
	tests := []struct {
		result preflight.Result
		want   string
	}{
		{preflight.Result{Name: "History ledger", Passed: true, Detail: "3 runs recorded"}, "PASS  History ledger   3 runs recorded"},
		{preflight.Result{Name: "History ledger", Passed: true, Detail: "Disabled"}, "OFF   History ledger   Disabled"},
		{preflight.Result{Name: "History directory", Detail: "/tmp/x (error: does not exist)"}, "FAIL  History directory /tmp/x (error: does not exist)"},
	}
	for _, tt := range tests {
		if got := renderCheckLine(tt.result, false); got != tt.want {
			t.Fatalf("renderCheckLine(%+v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestRenderRunSummary(t *testing.T) {
	if got := renderRunSummary(3, 0); got != "3 checked, all valid" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := renderRunSummary(3, 2); got != "3 checked, 2 failed" {
		t.Fatalf("unexpected summary %q", got)
	}
}
