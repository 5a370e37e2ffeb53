package cpl

import "github.com/google/uuid"

// checkSegments verifies that every segment references exactly the tracks of
// the registry. Unknown ids fail as soon as they are seen; the count check
// runs once the whole segment has been scanned, so a duplicate reference
// inside one segment surfaces as a count mismatch.
func checkSegments(segments []Segment, registry *trackRegistry) error {
	for idx, segment := range segments {
		seen := make(map[uuid.UUID]struct{}, registry.len())
		if segment.Marker != nil {
			if !registry.has(segment.Marker.TrackID) {
				return &UnknownTrackIDError{SegmentIndex: idx, TrackID: segment.Marker.TrackID}
			}
			seen[segment.Marker.TrackID] = struct{}{}
		}
		for _, seq := range segment.Sequences {
			if !registry.has(seq.TrackID) {
				return &UnknownTrackIDError{SegmentIndex: idx, TrackID: seq.TrackID}
			}
			seen[seq.TrackID] = struct{}{}
		}
		if len(seen) != registry.len() {
			return &TrackCountMismatchError{SegmentIndex: idx, Got: len(seen), Want: registry.len()}
		}
	}
	return nil
}
