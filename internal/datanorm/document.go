package datanorm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when a payload decodes to something other than a JSON object.
var ErrNotObject = errors.New("document is not a JSON object")

// RawDocument is an unvalidated dashboard payload. All accessors tolerate
// missing or mistyped fields.
type RawDocument struct {
	root Record
}

// NewRawDocument wraps an already-decoded object. A top-level "data"
// envelope is unwrapped when it holds the payload.
func NewRawDocument(root Record) RawDocument {
	if inner := Object(root, "data"); inner != nil && Object(root, "stats") == nil && Objects(root, "campaigns") == nil {
		root = inner
	}
	return RawDocument{root: root}
}

// DecodeDocument parses JSON text into a RawDocument. Numbers are kept as
// json.Number so large counters survive unchanged.
func DecodeDocument(data []byte) (RawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return RawDocument{}, fmt.Errorf("decoding document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return RawDocument{}, errors.New("decoding document: trailing data after top-level value")
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return RawDocument{}, ErrNotObject
	}
	return NewRawDocument(Record(obj)), nil
}

// Brand returns brand_name, or "" when absent.
func (d RawDocument) Brand() string {
	return ToString(Resolve(d.root, []string{"brand_name"}, ""))
}

// DateRange returns the reporting window with absent fields zeroed.
func (d RawDocument) DateRange() DateRange {
	dr := Object(d.root, "date_range")
	return DateRange{
		Start: ToString(Resolve(dr, []string{"start"}, "")),
		End:   ToString(Resolve(dr, []string{"end"}, "")),
		Days:  int(ToCount(Resolve(dr, []string{"days"}, 0))),
		Label: ToString(Resolve(dr, []string{"label"}, "")),
	}
}

// Stats returns the raw stats object (possibly nil).
func (d RawDocument) Stats() Record { return Object(d.root, "stats") }

// Charts returns the raw charts object (possibly nil).
func (d RawDocument) Charts() Record { return Object(d.root, "charts") }

// Campaigns returns the raw campaign records in input order.
func (d RawDocument) Campaigns() []Record { return Objects(d.root, "campaigns") }
