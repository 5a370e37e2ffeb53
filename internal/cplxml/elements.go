package cplxml

import (
	"encoding/xml"
	"strings"

	"cplcheck/internal/cpl"
)

type compositionElement struct {
	XMLName           xml.Name
	ID                string              `xml:"Id"`
	Annotation        string              `xml:"Annotation"`
	IssueDate         string              `xml:"IssueDate"`
	Issuer            string              `xml:"Issuer"`
	Creator           string              `xml:"Creator"`
	ContentOriginator string              `xml:"ContentOriginator"`
	ContentTitle      *userTextElement    `xml:"ContentTitle"`
	ContentKind       string              `xml:"ContentKind"`
	EditRate          *string             `xml:"EditRate"`
	SegmentList       *segmentListElement `xml:"SegmentList"`
}

type userTextElement struct {
	Value    string `xml:",chardata"`
	Language string `xml:"language,attr"`
}

type segmentListElement struct {
	Segments []segmentElement `xml:"Segment"`
}

type segmentElement struct {
	ID           string               `xml:"Id"`
	SequenceList *sequenceListElement `xml:"SequenceList"`
}

// sequenceListElement keeps the marker sequence apart and every other child
// element, in document order, as a tagged sequence.
type sequenceListElement struct {
	Markers   []sequenceElement
	Sequences []sequenceElement
}

func (l *sequenceListElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var seq sequenceElement
			if err := d.DecodeElement(&seq, &t); err != nil {
				return err
			}
			seq.TagName = t.Name.Local
			if t.Name.Local == cpl.MarkerSequenceTag {
				l.Markers = append(l.Markers, seq)
			} else {
				l.Sequences = append(l.Sequences, seq)
			}
		case xml.EndElement:
			return nil
		}
	}
}

type sequenceElement struct {
	TagName      string               `xml:"-"`
	ID           string               `xml:"Id"`
	TrackID      string               `xml:"TrackId"`
	ResourceList *resourceListElement `xml:"ResourceList"`
}

type resourceListElement struct {
	Resources []resourceElement `xml:"Resource"`
}

type resourceElement struct {
	Type              string          `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`
	ID                string          `xml:"Id"`
	Annotation        string          `xml:"Annotation"`
	EditRate          *string         `xml:"EditRate"`
	IntrinsicDuration *int64          `xml:"IntrinsicDuration"`
	EntryPoint        *int64          `xml:"EntryPoint"`
	SourceDuration    *int64          `xml:"SourceDuration"`
	RepeatCount       *int64          `xml:"RepeatCount"`
	SourceEncoding    string          `xml:"SourceEncoding"`
	TrackFileID       string          `xml:"TrackFileId"`
	Markers           []markerElement `xml:"Marker"`
}

type markerElement struct {
	Label  string `xml:"Label"`
	Offset int64  `xml:"Offset"`
}

const (
	trackFileResourceType = "TrackFileResourceType"
	markerResourceType    = "MarkerResourceType"
)

// resourceType strips the namespace prefix from the xsi:type value.
func (r resourceElement) resourceType() string {
	value := strings.TrimSpace(r.Type)
	if idx := strings.LastIndexByte(value, ':'); idx >= 0 {
		value = value[idx+1:]
	}
	return value
}
