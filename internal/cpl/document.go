package cpl

import (
	"time"

	"github.com/google/uuid"
)

// Document is the decoded Composition Playlist handed over by the ingestion
// layer. Identifiers are already normalised to UUIDs.
type Document struct {
	ID       uuid.UUID
	EditRate []int64
	Metadata Metadata
	Segments []Segment
}

// Metadata holds the descriptive CPL fields that do not take part in
// structural validation.
type Metadata struct {
	Annotation        string
	ContentTitle      string
	ContentTitleLang  string
	ContentKind       string
	ContentOriginator string
	Issuer            string
	Creator           string
	IssueDate         time.Time
}

// Segment is one entry of the CPL SegmentList.
type Segment struct {
	ID        uuid.UUID
	Marker    *MarkerSequence
	Sequences []Sequence
}

// MarkerSequence is the optional marker sequence of a segment.
type MarkerSequence struct {
	ID        uuid.UUID
	TrackID   uuid.UUID
	Resources []Resource
}

// Sequence is any non-marker sequence of a segment, tagged with the local
// name of its XML element (for example "MainImageSequence").
type Sequence struct {
	TagName   string
	ID        uuid.UUID
	TrackID   uuid.UUID
	Resources []Resource
}

// Kind resolves the sequence tag name.
func (s Sequence) Kind() SequenceKind {
	return ResolveSequenceKind(s.TagName)
}

// Resource is a ResourceList entry. The set of implementations is closed:
// TrackFileResource and MarkerResource.
type Resource interface {
	ResourceID() uuid.UUID
	resourceType() string
}

// TrackFileResource references a span of an essence track file. A zero
// RepeatCount means the element was absent and counts as one.
type TrackFileResource struct {
	ID                uuid.UUID
	Annotation        string
	EditRate          EditRate
	IntrinsicDuration int64
	EntryPoint        int64
	SourceDuration    int64
	HasSourceDuration bool
	RepeatCount       int64
	SourceEncoding    uuid.UUID
	TrackFileID       uuid.UUID
}

// ResourceID returns the resource identifier.
func (r TrackFileResource) ResourceID() uuid.UUID { return r.ID }

func (TrackFileResource) resourceType() string { return "TrackFileResourceType" }

// PlayedDuration returns the number of edit units the resource contributes:
// SourceDuration (or IntrinsicDuration minus EntryPoint) times RepeatCount.
func (r TrackFileResource) PlayedDuration() int64 {
	duration := r.IntrinsicDuration - r.EntryPoint
	if r.HasSourceDuration {
		duration = r.SourceDuration
	}
	repeat := r.RepeatCount
	if repeat <= 0 {
		repeat = 1
	}
	return duration * repeat
}

// Marker is a single label placed on a marker resource.
type Marker struct {
	Label  string
	Offset int64
}

// MarkerResource is the resource type carried by marker sequences.
type MarkerResource struct {
	ID                uuid.UUID
	IntrinsicDuration int64
	Markers           []Marker
}

// ResourceID returns the resource identifier.
func (r MarkerResource) ResourceID() uuid.UUID { return r.ID }

func (MarkerResource) resourceType() string { return "MarkerResourceType" }

// TrackResource is the per-track resource reference kept by a
// CompositionPlaylist.
type TrackResource = TrackFileResource
