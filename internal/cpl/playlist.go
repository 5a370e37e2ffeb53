package cpl

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CompositionPlaylist is a structurally validated Composition Playlist.
// It is immutable; accessors return copies.
type CompositionPlaylist struct {
	id        uuid.UUID
	editRate  EditRate
	metadata  Metadata
	order     []uuid.UUID
	tracks    map[uuid.UUID]VirtualTrack
	resources map[uuid.UUID][]TrackResource
}

// Option tunes the checks performed by New.
type Option func(*options)

type options struct {
	strictSequenceKinds bool
	positiveEditRate    bool
}

// WithStrictSequenceKinds rejects sequences whose element name is not a
// recognised sequence kind. By default such tracks are kept with
// SequenceKindUnknown.
func WithStrictSequenceKinds() Option {
	return func(o *options) { o.strictSequenceKinds = true }
}

// WithPositiveEditRate rejects edit rates whose denominator is zero or
// negative. By default the edit rate is accepted as written.
func WithPositiveEditRate() Option {
	return func(o *options) { o.positiveEditRate = true }
}

// New validates doc and builds the aggregate. Either every check passes and
// a CompositionPlaylist is returned, or an error wrapping
// ErrInvalidComposition is returned and nothing else.
func New(doc *Document, opts ...Option) (*CompositionPlaylist, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidComposition)
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(doc.Segments) == 0 {
		return nil, ErrNoSegments
	}
	registry, err := buildTrackRegistry(doc.Segments[0], cfg.strictSequenceKinds)
	if err != nil {
		return nil, err
	}
	if err := checkSegments(doc.Segments, registry); err != nil {
		return nil, err
	}
	resources, err := buildResourceLists(doc.Segments)
	if err != nil {
		return nil, err
	}

	// Track structure is checked before the edit rate.
	editRate, err := NewEditRate(doc.EditRate)
	if err != nil {
		return nil, err
	}
	if cfg.positiveEditRate && editRate.Denominator() <= 0 {
		return nil, &NonPositiveEditRateError{EditRate: editRate}
	}

	return &CompositionPlaylist{
		id:        doc.ID,
		editRate:  editRate,
		metadata:  doc.Metadata,
		order:     registry.order,
		tracks:    registry.tracks,
		resources: resources,
	}, nil
}

// ID returns the composition identifier.
func (c *CompositionPlaylist) ID() uuid.UUID { return c.id }

// EditRate returns the composition edit rate.
func (c *CompositionPlaylist) EditRate() EditRate { return c.editRate }

// Metadata returns the descriptive fields of the document.
func (c *CompositionPlaylist) Metadata() Metadata { return c.metadata }

// Tracks returns the virtual tracks in the order the first segment declares them.
func (c *CompositionPlaylist) Tracks() []VirtualTrack {
	out := make([]VirtualTrack, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.tracks[id])
	}
	return out
}

// TrackIDs returns the virtual track ids in declaration order.
func (c *CompositionPlaylist) TrackIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(c.order))
	copy(out, c.order)
	return out
}

// Track looks up a virtual track by id.
func (c *CompositionPlaylist) Track(id uuid.UUID) (VirtualTrack, bool) {
	track, ok := c.tracks[id]
	return track, ok
}

// Resources returns the concatenated resource list of a track. Tracks that
// only appear as marker sequences have no list.
func (c *CompositionPlaylist) Resources(id uuid.UUID) ([]TrackResource, bool) {
	list, ok := c.resources[id]
	if !ok {
		return nil, false
	}
	out := make([]TrackResource, len(list))
	copy(out, list)
	return out, true
}

// ResourcesByTrack returns a copy of every per-track resource list.
func (c *CompositionPlaylist) ResourcesByTrack() map[uuid.UUID][]TrackResource {
	out := make(map[uuid.UUID][]TrackResource, len(c.resources))
	for id, list := range c.resources {
		cp := make([]TrackResource, len(list))
		copy(cp, list)
		out[id] = cp
	}
	return out
}

// String renders the identifier and edit rate for diagnostics.
func (c *CompositionPlaylist) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=================== CompositionPlaylist : %s\n", c.id)
	b.WriteString("=================== EditRate =====================\n")
	fmt.Fprintf(&b, "numerator = %d, denominator = %d\n", c.editRate.Numerator(), c.editRate.Denominator())
	return b.String()
}
