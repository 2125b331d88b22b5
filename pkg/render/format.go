package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Output formats
const (
	FormatAuto     = "auto"
	FormatEnvelope = "envelope"
	FormatChain    = "chain"
	FormatTree     = "tree"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Formats lists every format accepted by ParseFormat
var Formats = []string{FormatAuto, FormatEnvelope, FormatChain, FormatTree, FormatMarkdown, FormatYAML}

// ParseFormat normalizes a format name
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatChain, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		for _, known := range Formats {
			if f == known {
				return f, nil
			}
		}
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SupportsColor reports whether styled output should be written to w
func SupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsTerminal(w) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// DetectFormat picks the tree on color terminals and the raw envelope
// everywhere else, so pipes always receive wire output
func DetectFormat(w io.Writer) string {
	if SupportsColor(w) {
		return FormatTree
	}
	return FormatEnvelope
}
