package cpl

import "testing"

func TestResolveSequenceKind(t *testing.T) {
	tests := []struct {
		tag  string
		want SequenceKind
	}{
		{"MarkerSequence", SequenceKindMarker},
		{"MainImageSequence", SequenceKindMainImage},
		{"MainAudioSequence", SequenceKindMainAudio},
		{"SubtitlesSequence", SequenceKindSubtitles},
		{"HearingImpairedCaptionsSequence", SequenceKindHearingImpairedCaptions},
		{"VisuallyImpairedTextSequence", SequenceKindVisuallyImpairedText},
		{"CommentarySequence", SequenceKindCommentary},
		{"KaraokeSequence", SequenceKindKaraoke},
		{"AncillaryDataSequence", SequenceKindAncillaryData},
		{"IABSequence", SequenceKindUnknown},
		{"mainimagesequence", SequenceKindUnknown},
		{"", SequenceKindUnknown},
	}
	for _, tt := range tests {
		got := ResolveSequenceKind(tt.tag)
		if got != tt.want {
			t.Errorf("ResolveSequenceKind(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestSequenceKindStringRoundTrip(t *testing.T) {
	for kind := SequenceKindMarker; kind <= SequenceKindAncillaryData; kind++ {
		if !kind.Known() {
			t.Fatalf("expected %d to be known", kind)
		}
		if ResolveSequenceKind(kind.String()) != kind {
			t.Fatalf("kind %v did not resolve from its own name", kind)
		}
	}
	if SequenceKindUnknown.Known() {
		t.Fatal("expected unknown kind to report Known() == false")
	}
	if SequenceKindUnknown.String() != "Unknown" {
		t.Fatalf("unexpected unknown label %q", SequenceKindUnknown.String())
	}
}
