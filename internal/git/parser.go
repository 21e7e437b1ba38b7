package git

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// HistoryParser turns raw history records into numbered, time-filtered entries.
type HistoryParser interface {
	Parse(raw string, window TimeWindow) ([]ChangeSetEntry, error)
}

const (
	historyEnvelopeOpen  = `<ArrayOfModification xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">`
	historyEnvelopeClose = `</ArrayOfModification>`

	commitTypePrefix = "Commit "
)

type historyEnvelope struct {
	XMLName       xml.Name        `xml:"ArrayOfModification"`
	Modifications []historyRecord `xml:"Modification"`
}

// historyRecord mirrors one <Modification> element. CDATA sections decode to
// the same character data as plain text.
type historyRecord struct {
	Type         string `xml:"Type"`
	ModifiedTime string `xml:"ModifiedTime"`
	UserName     string `xml:"UserName"`
	EmailAddress string `xml:"EmailAddress"`
	Comment      string `xml:"Comment"`
}

// XMLHistoryParser parses the <Modification> records produced by HistoryExtractor.
type XMLHistoryParser struct{}

// NewXMLHistoryParser creates a new parser.
func NewXMLHistoryParser() *XMLHistoryParser {
	return &XMLHistoryParser{}
}

// Parse decodes raw, which must already be in chronological ascending order,
// and returns the entries whose timestamp falls in window.
// Every record consumes a sequence number, including records outside the
// window, so the numbers of a filtered result are not contiguous.
func (p *XMLHistoryParser) Parse(raw string, window TimeWindow) ([]ChangeSetEntry, error) {
	var env historyEnvelope
	doc := historyEnvelopeOpen + raw + historyEnvelopeClose
	if err := xml.Unmarshal([]byte(doc), &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryParse, err)
	}

	results := make([]ChangeSetEntry, 0, len(env.Modifications))
	for i, rec := range env.Modifications {
		seq := i + 1

		when, err := parseModifiedTime(rec.ModifiedTime)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrHistoryParse, seq, err)
		}

		if !window.Contains(when) {
			continue
		}

		typ := strings.TrimSpace(rec.Type)
		results = append(results, ChangeSetEntry{
			Sequence:    seq,
			Type:        typeName(typ),
			CommitID:    strings.TrimSpace(strings.TrimPrefix(typ, commitTypePrefix)),
			Timestamp:   when,
			AuthorName:  strings.TrimSpace(rec.UserName),
			AuthorEmail: strings.TrimSpace(rec.EmailAddress),
			Message:     strings.TrimSpace(rec.Comment),
		})
	}

	return results, nil
}

func parseModifiedTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse modified time %q: %w", s, err)
	}
	return t, nil
}

func typeName(typ string) string {
	if strings.HasPrefix(typ, commitTypePrefix) || typ == "" {
		return strings.TrimSpace(commitTypePrefix)
	}
	return typ
}

// Compile-time interface conformance check.
var _ HistoryParser = (*XMLHistoryParser)(nil)
