// Package cpl validates the structure of an IMF Composition Playlist once it
// has been decoded into a Document.
//
// New derives the composition's virtual tracks from the first segment,
// checks that every segment references exactly that set of tracks, and
// concatenates the track file resources of each track across all segments.
// Construction is all-or-nothing: a CompositionPlaylist is only returned
// when every check passes, and it exposes copies of its state so callers
// can share it between goroutines without locking.
//
// # Key Types
//
// Document: the decoded input tree (segments, sequences, resources).
//
// CompositionPlaylist: the validated aggregate (id, edit rate, tracks,
// per-track resource lists).
//
// EditRate, SequenceKind, VirtualTrack: value types exposed by the aggregate.
//
// # Errors
//
// Every construction failure wraps ErrInvalidComposition and carries a typed
// error (DuplicateTrackIDError, UnknownTrackIDError, TrackCountMismatchError,
// ...) for errors.As. The package never logs.
package cpl
