package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-footer/pkg/model"
)

// Document wraps a raw content payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("content: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("content: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Values decodes the payload into generic JSON-compatible values.
func (d Document) Values() (map[string]any, error) {
	return Decode(d.raw)
}

// Props decodes the payload into footer props, converting markup fields with
// policy.
func (d Document) Props(policy Policy) (model.Props, error) {
	values, err := d.Values()
	if err != nil {
		return model.Props{}, fmt.Errorf("content: %s: %w", d.Location(), err)
	}
	return PropsFromValues(values, policy), nil
}

// Decode parses JSON when the payload starts with an object brace and YAML
// otherwise. Values are normalised to the encoding/json representation
// (float64 numbers, map[string]any objects) regardless of the input format.
func Decode(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	var decoded any
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &decoded); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	} else {
		var fromYAML any
		if err := yaml.Unmarshal(trimmed, &fromYAML); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		normalised, err := json.Marshal(fromYAML)
		if err != nil {
			return nil, fmt.Errorf("normalise yaml: %w", err)
		}
		if err := json.Unmarshal(normalised, &decoded); err != nil {
			return nil, fmt.Errorf("normalise yaml: %w", err)
		}
	}

	values, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object, got %T", decoded)
	}
	return values, nil
}
