package cpl

// SequenceKind identifies the role of a sequence within a segment.
type SequenceKind int

const (
	SequenceKindUnknown SequenceKind = iota
	SequenceKindMarker
	SequenceKindMainImage
	SequenceKindMainAudio
	SequenceKindSubtitles
	SequenceKindHearingImpairedCaptions
	SequenceKindVisuallyImpairedText
	SequenceKindCommentary
	SequenceKindKaraoke
	SequenceKindAncillaryData
)

// MarkerSequenceTag is the element name of the marker sequence.
const MarkerSequenceTag = "MarkerSequence"

var sequenceTags = map[SequenceKind]string{
	SequenceKindMarker:                  MarkerSequenceTag,
	SequenceKindMainImage:               "MainImageSequence",
	SequenceKindMainAudio:               "MainAudioSequence",
	SequenceKindSubtitles:               "SubtitlesSequence",
	SequenceKindHearingImpairedCaptions: "HearingImpairedCaptionsSequence",
	SequenceKindVisuallyImpairedText:    "VisuallyImpairedTextSequence",
	SequenceKindCommentary:              "CommentarySequence",
	SequenceKindKaraoke:                 "KaraokeSequence",
	SequenceKindAncillaryData:           "AncillaryDataSequence",
}

var sequenceKinds = func() map[string]SequenceKind {
	out := make(map[string]SequenceKind, len(sequenceTags))
	for kind, tag := range sequenceTags {
		out[tag] = kind
	}
	return out
}()

// ResolveSequenceKind maps a sequence element name to its kind. Names outside
// the recognised set resolve to SequenceKindUnknown.
func ResolveSequenceKind(tag string) SequenceKind {
	if kind, ok := sequenceKinds[tag]; ok {
		return kind
	}
	return SequenceKindUnknown
}

// Known reports whether the kind is one of the recognised sequence roles.
func (k SequenceKind) Known() bool {
	_, ok := sequenceTags[k]
	return ok
}

func (k SequenceKind) String() string {
	if tag, ok := sequenceTags[k]; ok {
		return tag
	}
	return "Unknown"
}
