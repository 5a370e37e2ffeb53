package main

import (
	"encoding/json"
	"testing"

	"cplcheck/internal/report"
)

func TestTracksTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tracks", validFixture}, env.configPath)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	requireContains(t, out, "CompositionPlaylist : 0b7c5a7e-54b9-4d8c-9f4e-0f2b8d1b6a10")
	requireContains(t, out, "numerator = 24, denominator = 1")
	requireContains(t, out, "Main Image")
	requireContains(t, out, "Main Audio")
	requireContains(t, out, "11111111-1111-4111-8111-111111111111")
}

func TestTracksJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tracks", "--json", validFixture}, env.configPath)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	var tracks []report.TrackSummary
	if err := json.Unmarshal([]byte(out), &tracks); err != nil {
		t.Fatalf("decode tracks: %v\n%s", err, out)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}
	if tracks[0].Kind != "MarkerSequence" || tracks[0].Resources != 0 {
		t.Fatalf("unexpected marker track %+v", tracks[0])
	}
	// 24 + 24*2 + 24
	if tracks[1].Resources != 3 || tracks[1].Duration != 96 {
		t.Fatalf("unexpected image track %+v", tracks[1])
	}
	if tracks[2].Resources != 2 || tracks[2].Duration != 192000 {
		t.Fatalf("unexpected audio track %+v", tracks[2])
	}
}

func TestTracksInvalidFile(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"tracks", invalidFixture}, env.configPath); err == nil {
		t.Fatal("expected tracks to fail for an inconsistent composition")
	}
}

func TestKindDisplayName(t *testing.T) {
	tests := map[string]string{
		"MainImageSequence":               "Main Image",
		"HearingImpairedCaptionsSequence": "Hearing Impaired Captions",
		"MarkerSequence":                  "Marker",
		"Sequence":                        "Sequence",
		"IABSequence":                     "Iab",
	}
	for input, want := range tests {
		if got := kindDisplayName(input); got != want {
			t.Fatalf("kindDisplayName(%q) = %q, want %q", input, got, want)
		}
	}
}
