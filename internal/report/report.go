package report

import (
	"errors"
	"time"

	"cplcheck/internal/cpl"
	"cplcheck/internal/cplxml"
)

// Error codes recorded for failed validations.
const (
	CodeMalformedEditRate   = "malformed_edit_rate"
	CodeNonPositiveEditRate = "non_positive_edit_rate"
	CodeDuplicateTrackID    = "duplicate_track_id"
	CodeUnknownTrackID      = "unknown_track_id"
	CodeTrackCountMismatch  = "track_count_mismatch"
	CodeTypeMismatch        = "type_mismatch"
	CodeUnknownSequenceKind = "unknown_sequence_kind"
	CodeNoSegments          = "no_segments"
	CodeInvalidComposition  = "invalid_composition"
	CodeDocumentParse       = "document_parse"
	CodeSchemaValidation    = "schema_validation"
	CodeIO                  = "io"
)

// Report describes the validation of a single file.
type Report struct {
	Path          string           `json:"path"`
	Valid         bool             `json:"valid"`
	CompositionID string           `json:"composition_id,omitempty"`
	Title         string           `json:"content_title,omitempty"`
	Kind          string           `json:"content_kind,omitempty"`
	Issuer        string           `json:"issuer,omitempty"`
	IssueDate     string           `json:"issue_date,omitempty"`
	EditRate      string           `json:"edit_rate,omitempty"`
	Tracks        []TrackSummary   `json:"tracks,omitempty"`
	ErrorCode     string           `json:"error_code,omitempty"`
	Error         string           `json:"error,omitempty"`
	Problems      []cplxml.Problem `json:"problems,omitempty"`
}

// TrackSummary is one virtual track of a valid composition.
type TrackSummary struct {
	TrackID   string `json:"track_id"`
	Kind      string `json:"kind"`
	Resources int    `json:"resources"`
	Duration  int64  `json:"duration"`
}

// Build assembles the report for path. A non-nil err always yields an
// invalid report; otherwise pl must be the constructed aggregate.
func Build(path string, pl *cpl.CompositionPlaylist, err error) Report {
	rep := Report{Path: path}
	if err != nil {
		rep.ErrorCode = Classify(err)
		rep.Error = err.Error()
		var schemaErr *cplxml.SchemaValidationError
		if errors.As(err, &schemaErr) {
			rep.Problems = append([]cplxml.Problem(nil), schemaErr.Problems...)
		}
		return rep
	}
	if pl == nil {
		rep.ErrorCode = CodeInvalidComposition
		rep.Error = "no composition playlist was produced"
		return rep
	}

	rep.Valid = true
	rep.CompositionID = pl.ID().String()
	rep.EditRate = pl.EditRate().String()
	rep.Tracks = Tracks(pl)

	meta := pl.Metadata()
	rep.Title = meta.ContentTitle
	rep.Kind = meta.ContentKind
	rep.Issuer = meta.Issuer
	if !meta.IssueDate.IsZero() {
		rep.IssueDate = meta.IssueDate.UTC().Format(time.RFC3339)
	}
	return rep
}

// Tracks summarises every virtual track in registry order. Duration is the
// sum of the played durations of the track's resources, in the edit units
// of each resource; it is informational and never reconciled.
func Tracks(pl *cpl.CompositionPlaylist) []TrackSummary {
	tracks := pl.Tracks()
	out := make([]TrackSummary, 0, len(tracks))
	for _, track := range tracks {
		summary := TrackSummary{
			TrackID: track.ID.String(),
			Kind:    kindLabel(track),
		}
		resources, _ := pl.Resources(track.ID)
		summary.Resources = len(resources)
		for _, res := range resources {
			summary.Duration += res.PlayedDuration()
		}
		out = append(out, summary)
	}
	return out
}

// Summary renders the diagnostic text block for a valid composition.
func Summary(pl *cpl.CompositionPlaylist) string {
	if pl == nil {
		return ""
	}
	return pl.String()
}

// Classify maps an error from decoding or construction to its error code.
func Classify(err error) string {
	var (
		malformed   *cpl.MalformedEditRateError
		nonPositive *cpl.NonPositiveEditRateError
		duplicate   *cpl.DuplicateTrackIDError
		unknownID   *cpl.UnknownTrackIDError
		mismatch    *cpl.TrackCountMismatchError
		typeErr     *cpl.TypeMismatchError
		unknownKind *cpl.UnknownSequenceKindError
		parseErr    *cplxml.DocumentParseError
		schemaErr   *cplxml.SchemaValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &malformed):
		return CodeMalformedEditRate
	case errors.As(err, &nonPositive):
		return CodeNonPositiveEditRate
	case errors.As(err, &duplicate):
		return CodeDuplicateTrackID
	case errors.As(err, &unknownID):
		return CodeUnknownTrackID
	case errors.As(err, &mismatch):
		return CodeTrackCountMismatch
	case errors.As(err, &typeErr):
		return CodeTypeMismatch
	case errors.As(err, &unknownKind):
		return CodeUnknownSequenceKind
	case errors.Is(err, cpl.ErrNoSegments):
		return CodeNoSegments
	case errors.Is(err, cpl.ErrInvalidComposition):
		return CodeInvalidComposition
	case errors.As(err, &parseErr):
		return CodeDocumentParse
	case errors.As(err, &schemaErr):
		return CodeSchemaValidation
	default:
		return CodeIO
	}
}

func kindLabel(track cpl.VirtualTrack) string {
	if track.Kind.Known() {
		return track.Kind.String()
	}
	if track.TagName != "" {
		return track.TagName
	}
	return track.Kind.String()
}
