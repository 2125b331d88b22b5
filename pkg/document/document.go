package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported document formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Formats lists the supported document formats
var Formats = []string{FormatYAML, FormatTOML, FormatJSON, FormatXML}

// Document is an ordered list of steps forming one chain
type Document struct {
	Actions []Step `yaml:"actions" toml:"actions" json:"actions"`
}

// Step describes a single action. Only the fields of the variant named by
// Type are read when building.
type Step struct {
	Type string `yaml:"type" toml:"type" json:"type"`

	// navigation
	Name   string      `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Screen string      `yaml:"screen,omitempty" toml:"screen,omitempty" json:"screen,omitempty"`
	Params interface{} `yaml:"params,omitempty" toml:"params,omitempty" json:"params,omitempty"`

	// toast, dialog, notification
	Kind     string `yaml:"kind,omitempty" toml:"kind,omitempty" json:"kind,omitempty"`
	Title    string `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	TextBody string `yaml:"textBody,omitempty" toml:"textBody,omitempty" json:"textBody,omitempty"`
	Body     string `yaml:"body,omitempty" toml:"body,omitempty" json:"body,omitempty"`

	// link
	URL string `yaml:"url,omitempty" toml:"url,omitempty" json:"url,omitempty"`

	// dialog
	Options []Option `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
}

// Option is a dialog choice and the steps it triggers
type Option struct {
	Text    string `yaml:"text" toml:"text" json:"text"`
	Actions []Step `yaml:"actions,omitempty" toml:"actions,omitempty" json:"actions,omitempty"`
}

// FormatFromPath returns the format implied by the file extension, or ""
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return ""
	}
}

// IsFormat reports whether f is a supported document format
func IsFormat(f string) bool {
	for _, known := range Formats {
		if known == f {
			return true
		}
	}
	return false
}

// Load reads a document, choosing the format from the file extension and
// falling back to YAML
func Load(path string) (*Document, error) {
	return LoadWithFormat(path, FormatYAML)
}

// LoadWithFormat reads a document, using fallback when the extension does not
// name a format
func LoadWithFormat(path, fallback string) (*Document, error) {
	logger := logging.GetLogger("document")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "failed to read document %s", path).
			WithDetail("path", path)
	}

	format := FormatFromPath(path)
	if format == "" {
		format = fallback
	}

	logger.Debug().
		Str("path", path).
		Str("format", format).
		Int("bytes", len(data)).
		Msg("Loading document")

	doc, err := Parse(data, format)
	if err != nil {
		if aqErr, ok := err.(*errors.ActionqError); ok {
			aqErr.WithDetail("path", path)
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes a document in the given format. Unknown fields are rejected.
func Parse(data []byte, format string) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !isEOF(err) {
			return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse YAML document")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse TOML document")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse JSON document")
		}
	case FormatXML:
		parsed, err := parseXML(data)
		if err != nil {
			return nil, err
		}
		doc = *parsed
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %q", format).
			WithDetail("valid", Formats)
	}

	return &doc, nil
}

// Marshal encodes a document in the given format
func Marshal(doc *Document, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode YAML document")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode YAML document")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		b, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode TOML document")
		}
		return b, nil
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode JSON document")
		}
		return append(b, '\n'), nil
	case FormatXML:
		return marshalXML(doc)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %q", format).
			WithDetail("valid", Formats)
	}
}

// an empty YAML stream decodes to an empty document
func isEOF(err error) bool {
	return err == io.EOF
}
