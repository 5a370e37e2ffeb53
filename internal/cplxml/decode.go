package cplxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"cplcheck/internal/cpl"
	"cplcheck/internal/logging"
)

const (
	rootElement  = "CompositionPlaylist"
	cplNamespace = "http://www.smpte-ra.org/schemas/2067-3/2013"
)

// Option configures Decode.
type Option func(*decoder)

// WithLogger routes decode diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *decoder) {
		d.logger = logging.NewComponentLogger(logger, "cplxml")
	}
}

type decoder struct {
	logger   *slog.Logger
	problems []Problem
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string, opts ...Option) (*cpl.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open composition playlist: %w", err)
	}
	defer file.Close()
	return Decode(file, opts...)
}

// Decode reads a Composition Playlist document from r. The document is
// validated against the embedded ST 2067-2/2067-3 schema set before it is
// unmarshalled.
func Decode(r io.Reader, opts ...Option) (*cpl.Document, error) {
	d := &decoder{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read composition playlist: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DocumentParseError{Err: errors.New("document is empty")}
	}

	if err := validateSchema(data); err != nil {
		var schemaErr *SchemaValidationError
		if errors.As(err, &schemaErr) {
			d.logger.Debug("composition playlist failed schema validation", logging.Int("problems", len(schemaErr.Problems)))
		}
		return nil, err
	}

	var root compositionElement
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &DocumentParseError{Err: err}
	}

	d.check(&root)
	if len(d.problems) > 0 {
		return nil, &SchemaValidationError{Problems: d.problems}
	}

	doc, err := convert(&root)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("composition playlist decoded",
		logging.String("id", doc.ID.String()),
		logging.Int("segments", len(doc.Segments)),
	)
	return doc, nil
}

// check covers what the schema set cannot express. Any global element of
// the set validates as a document root, so the root is pinned here, and
// xs:language accepts any run of 1-8 character subtags, so the ContentTitle
// language is parsed as a BCP 47 tag as well.
func (d *decoder) check(root *compositionElement) {
	if root.XMLName.Local != rootElement || root.XMLName.Space != cplNamespace {
		d.problems = append(d.problems, Problem{
			Path:    "/" + root.XMLName.Local,
			Code:    CodeRootElement,
			Message: fmt.Sprintf("root element must be {%s}%s", cplNamespace, rootElement),
		})
		return
	}
	lang := strings.TrimSpace(root.ContentTitle.Language)
	if lang == "" {
		return
	}
	if _, err := language.Parse(lang); err != nil {
		d.problems = append(d.problems, Problem{
			Path:    "/" + rootElement + "/ContentTitle",
			Code:    CodeLanguageTag,
			Message: fmt.Sprintf("invalid language tag %q: %v", lang, err),
		})
	}
}

func convert(root *compositionElement) (*cpl.Document, error) {
	id, err := parseURNAt(rootElement+"/Id", root.ID)
	if err != nil {
		return nil, err
	}
	editRate, err := parseIntegerList(*root.EditRate)
	if err != nil {
		return nil, &DocumentParseError{Path: rootElement + "/EditRate", Err: err}
	}
	issueDate, _ := parseDateTime(root.IssueDate)

	doc := &cpl.Document{
		ID:       id,
		EditRate: editRate,
		Metadata: cpl.Metadata{
			Annotation:        strings.TrimSpace(root.Annotation),
			ContentTitle:      strings.TrimSpace(root.ContentTitle.Value),
			ContentTitleLang:  strings.TrimSpace(root.ContentTitle.Language),
			ContentKind:       strings.TrimSpace(root.ContentKind),
			ContentOriginator: strings.TrimSpace(root.ContentOriginator),
			Issuer:            strings.TrimSpace(root.Issuer),
			Creator:           strings.TrimSpace(root.Creator),
			IssueDate:         issueDate,
		},
		Segments: make([]cpl.Segment, 0, len(root.SegmentList.Segments)),
	}
	for idx, element := range root.SegmentList.Segments {
		segment, err := convertSegment(fmt.Sprintf("SegmentList/Segment[%d]", idx+1), element)
		if err != nil {
			return nil, err
		}
		doc.Segments = append(doc.Segments, segment)
	}
	return doc, nil
}

func convertSegment(path string, element segmentElement) (cpl.Segment, error) {
	id, err := parseURNAt(path+"/Id", element.ID)
	if err != nil {
		return cpl.Segment{}, err
	}
	segment := cpl.Segment{ID: id}
	if len(element.SequenceList.Markers) > 0 {
		seq, err := convertSequence(path+"/SequenceList/"+cpl.MarkerSequenceTag, element.SequenceList.Markers[0])
		if err != nil {
			return cpl.Segment{}, err
		}
		segment.Marker = &cpl.MarkerSequence{ID: seq.ID, TrackID: seq.TrackID, Resources: seq.Resources}
	}
	for idx, seqElement := range element.SequenceList.Sequences {
		seq, err := convertSequence(fmt.Sprintf("%s/SequenceList/%s[%d]", path, seqElement.TagName, idx+1), seqElement)
		if err != nil {
			return cpl.Segment{}, err
		}
		segment.Sequences = append(segment.Sequences, seq)
	}
	return segment, nil
}

func convertSequence(path string, element sequenceElement) (cpl.Sequence, error) {
	id, err := parseURNAt(path+"/Id", element.ID)
	if err != nil {
		return cpl.Sequence{}, err
	}
	trackID, err := parseURNAt(path+"/TrackId", element.TrackID)
	if err != nil {
		return cpl.Sequence{}, err
	}
	seq := cpl.Sequence{TagName: element.TagName, ID: id, TrackID: trackID}
	for idx, res := range element.ResourceList.Resources {
		resource, err := convertResource(fmt.Sprintf("%s/ResourceList/Resource[%d]", path, idx+1), res)
		if err != nil {
			return cpl.Sequence{}, err
		}
		seq.Resources = append(seq.Resources, resource)
	}
	return seq, nil
}

func convertResource(path string, element resourceElement) (cpl.Resource, error) {
	id, err := parseURNAt(path+"/Id", element.ID)
	if err != nil {
		return nil, err
	}
	switch element.resourceType() {
	case markerResourceType:
		marker := cpl.MarkerResource{ID: id, IntrinsicDuration: *element.IntrinsicDuration}
		for _, m := range element.Markers {
			marker.Markers = append(marker.Markers, cpl.Marker{Label: strings.TrimSpace(m.Label), Offset: m.Offset})
		}
		return marker, nil
	case trackFileResourceType:
	default:
		return nil, &DocumentParseError{Path: path, Err: fmt.Errorf("unsupported resource type %q", element.Type)}
	}

	trackFileID, err := parseURNAt(path+"/TrackFileId", element.TrackFileID)
	if err != nil {
		return nil, err
	}
	sourceEncoding, err := parseURNAt(path+"/SourceEncoding", element.SourceEncoding)
	if err != nil {
		return nil, err
	}
	resource := cpl.TrackFileResource{
		ID:                id,
		Annotation:        strings.TrimSpace(element.Annotation),
		IntrinsicDuration: *element.IntrinsicDuration,
		SourceEncoding:    sourceEncoding,
		TrackFileID:       trackFileID,
	}
	if element.EditRate != nil {
		values, _ := parseIntegerList(*element.EditRate)
		if resource.EditRate, err = cpl.NewEditRate(values); err != nil {
			return nil, &DocumentParseError{Path: path + "/EditRate", Err: err}
		}
	}
	if element.EntryPoint != nil {
		resource.EntryPoint = *element.EntryPoint
	}
	if element.SourceDuration != nil {
		resource.SourceDuration = *element.SourceDuration
		resource.HasSourceDuration = true
	}
	if element.RepeatCount != nil {
		resource.RepeatCount = *element.RepeatCount
	}
	return resource, nil
}

// parseIntegerList reads an xs:list of integers such as "24000 1001".
func parseIntegerList(raw string) ([]int64, error) {
	fields := strings.Fields(raw)
	values := make([]int64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		values = append(values, value)
	}
	return values, nil
}

func parseDateTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	// xs:dateTime allows omitting the zone designator.
	return time.Parse("2006-01-02T15:04:05", value)
}
