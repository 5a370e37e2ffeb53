package cpl

import "github.com/google/uuid"

// VirtualTrack is a logical track that persists across segments. TagName
// keeps the element name the track was declared with, which matters when
// Kind is SequenceKindUnknown.
type VirtualTrack struct {
	ID      uuid.UUID
	Kind    SequenceKind
	TagName string
}

// trackRegistry is the ordered set of virtual tracks declared by the first
// segment.
type trackRegistry struct {
	order  []uuid.UUID
	tracks map[uuid.UUID]VirtualTrack
}

func newTrackRegistry() *trackRegistry {
	return &trackRegistry{tracks: make(map[uuid.UUID]VirtualTrack)}
}

func (r *trackRegistry) register(track VirtualTrack) error {
	if _, ok := r.tracks[track.ID]; ok {
		return &DuplicateTrackIDError{TrackID: track.ID}
	}
	r.tracks[track.ID] = track
	r.order = append(r.order, track.ID)
	return nil
}

func (r *trackRegistry) has(id uuid.UUID) bool {
	_, ok := r.tracks[id]
	return ok
}

func (r *trackRegistry) len() int {
	return len(r.order)
}

// buildTrackRegistry registers the marker sequence first, then every other
// sequence of the segment in document order.
func buildTrackRegistry(first Segment, strict bool) (*trackRegistry, error) {
	registry := newTrackRegistry()
	if first.Marker != nil {
		track := VirtualTrack{ID: first.Marker.TrackID, Kind: SequenceKindMarker, TagName: MarkerSequenceTag}
		if err := registry.register(track); err != nil {
			return nil, err
		}
	}
	for _, seq := range first.Sequences {
		kind := seq.Kind()
		if strict && !kind.Known() {
			return nil, &UnknownSequenceKindError{TagName: seq.TagName, TrackID: seq.TrackID}
		}
		if err := registry.register(VirtualTrack{ID: seq.TrackID, Kind: kind, TagName: seq.TagName}); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
