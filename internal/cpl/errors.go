package cpl

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidComposition is wrapped by every structural failure raised by New.
	ErrInvalidComposition = errors.New("invalid composition playlist")
	// ErrNoSegments reports a document without any segment.
	ErrNoSegments = fmt.Errorf("%w: segment list is empty", ErrInvalidComposition)
)

// MalformedEditRateError reports an edit rate that is not a numerator and
// denominator pair.
type MalformedEditRateError struct {
	Values []int64
}

func (e *MalformedEditRateError) Error() string {
	return fmt.Sprintf("edit rate: expected 2 numbers (numerator and denominator), found %d numbers in list %v", len(e.Values), e.Values)
}

func (e *MalformedEditRateError) Unwrap() error { return ErrInvalidComposition }

// NonPositiveEditRateError reports an edit rate whose denominator is zero or
// negative. Only raised when WithPositiveEditRate is set.
type NonPositiveEditRateError struct {
	EditRate EditRate
}

func (e *NonPositiveEditRateError) Error() string {
	return fmt.Sprintf("edit rate %s: denominator must be positive", e.EditRate)
}

func (e *NonPositiveEditRateError) Unwrap() error { return ErrInvalidComposition }

// DuplicateTrackIDError reports a track id used by two sequences of the
// first segment.
type DuplicateTrackIDError struct {
	TrackID uuid.UUID
}

func (e *DuplicateTrackIDError) Error() string {
	return fmt.Sprintf("virtual track %s: track id registered more than once in the first segment", e.TrackID)
}

func (e *DuplicateTrackIDError) Unwrap() error { return ErrInvalidComposition }

// UnknownTrackIDError reports a segment referencing a track id that the first
// segment does not define.
type UnknownTrackIDError struct {
	SegmentIndex int
	TrackID      uuid.UUID
}

func (e *UnknownTrackIDError) Error() string {
	return fmt.Sprintf("segment %d: track id %s is not a virtual track of the first segment", e.SegmentIndex, e.TrackID)
}

func (e *UnknownTrackIDError) Unwrap() error { return ErrInvalidComposition }

// TrackCountMismatchError reports a segment whose distinct track ids do not
// cover the virtual track registry.
type TrackCountMismatchError struct {
	SegmentIndex int
	Got          int
	Want         int
}

func (e *TrackCountMismatchError) Error() string {
	return fmt.Sprintf("segment %d: references %d distinct virtual tracks, want %d", e.SegmentIndex, e.Got, e.Want)
}

func (e *TrackCountMismatchError) Unwrap() error { return ErrInvalidComposition }

// TypeMismatchError reports a non-marker sequence holding a resource that is
// not a track file resource.
type TypeMismatchError struct {
	SegmentIndex int
	TrackID      uuid.UUID
	Got          string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("segment %d: track %s: expected TrackFileResourceType, got %s", e.SegmentIndex, e.TrackID, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrInvalidComposition }

// UnknownSequenceKindError reports an unrecognised sequence element when
// strict sequence kinds are enabled.
type UnknownSequenceKindError struct {
	TagName string
	TrackID uuid.UUID
}

func (e *UnknownSequenceKindError) Error() string {
	return fmt.Sprintf("virtual track %s: unrecognised sequence %q", e.TrackID, e.TagName)
}

func (e *UnknownSequenceKindError) Unwrap() error { return ErrInvalidComposition }
