package source

import (
	"fmt"
	"os"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
)

// Decode parses dashboard JSON text. Any parse failure is reported as
// ErrMalformedJSON.
func Decode(content []byte) (datanorm.RawDocument, error) {
	doc, err := datanorm.DecodeDocument(content)
	if err != nil {
		return datanorm.RawDocument{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return doc, nil
}

// ReadFile loads a dashboard document from disk.
func ReadFile(path string) (datanorm.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return datanorm.RawDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}
