package cpl

import "github.com/google/uuid"

// resourceLists accumulates track file resources per virtual track while the
// segments are scanned. It never leaves New; freeze hands out the result.
type resourceLists struct {
	lists map[uuid.UUID][]TrackResource
}

func newResourceLists() *resourceLists {
	return &resourceLists{lists: make(map[uuid.UUID][]TrackResource)}
}

func (b *resourceLists) add(segmentIndex int, seq Sequence) error {
	for _, resource := range seq.Resources {
		trackFile, ok := resource.(TrackFileResource)
		if !ok {
			return &TypeMismatchError{SegmentIndex: segmentIndex, TrackID: seq.TrackID, Got: resourceTypeName(resource)}
		}
		b.lists[seq.TrackID] = append(b.lists[seq.TrackID], trackFile)
	}
	if _, ok := b.lists[seq.TrackID]; !ok {
		// A sequence with an empty resource list still marks the track as
		// carrying resources.
		b.lists[seq.TrackID] = []TrackResource{}
	}
	return nil
}

func (b *resourceLists) freeze() map[uuid.UUID][]TrackResource {
	out := make(map[uuid.UUID][]TrackResource, len(b.lists))
	for id, list := range b.lists {
		frozen := make([]TrackResource, len(list))
		copy(frozen, list)
		out[id] = frozen
	}
	return out
}

// buildResourceLists concatenates, per track, the resources of every
// non-marker sequence in segment order then document order. Marker sequences
// never contribute.
func buildResourceLists(segments []Segment) (map[uuid.UUID][]TrackResource, error) {
	builder := newResourceLists()
	for idx, segment := range segments {
		for _, seq := range segment.Sequences {
			if err := builder.add(idx, seq); err != nil {
				return nil, err
			}
		}
	}
	return builder.freeze(), nil
}

func resourceTypeName(resource Resource) string {
	if resource == nil {
		return "<nil>"
	}
	return resource.resourceType()
}
