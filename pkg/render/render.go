package render

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/document"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
)

// Options configures a Renderer
type Options struct {
	Format  string // one of Formats; auto picks by terminal
	Indent  string // JSON indent for the chain format, empty for compact
	Style   string // glamour style for markdown
	Width   int    // markdown word wrap
	NoColor bool
}

// Renderer writes envelopes to w in one format
type Renderer struct {
	w      io.Writer
	opts   Options
	color  bool
	styles *Styles
}

// NewRenderer resolves the auto format and color support for w
func NewRenderer(w io.Writer, opts Options) (*Renderer, error) {
	log := logging.GetLogger("render")

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format").
			WithDetail("valid", Formats)
	}
	if format == FormatAuto {
		format = DetectFormat(w)
	}
	opts.Format = format

	color := !opts.NoColor && SupportsColor(w)

	log.Debug().
		Str("format", format).
		Bool("color", color).
		Msg("Renderer created")

	return &Renderer{
		w:      w,
		opts:   opts,
		color:  color,
		styles: DefaultStyles(),
	}, nil
}

// Format returns the resolved format
func (r *Renderer) Format() string {
	return r.opts.Format
}

// Render writes env. Formats other than envelope decode the chain first.
func (r *Renderer) Render(env actions.Envelope) error {
	out, err := r.Sprint(env)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// Sprint returns what Render would write
func (r *Renderer) Sprint(env actions.Envelope) (string, error) {
	if r.opts.Format == FormatEnvelope {
		// The envelope is wire output and stays compact
		b, err := EnvelopeJSON(env, "")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}

	root, err := env.Chain()
	if err != nil {
		return "", err
	}

	switch r.opts.Format {
	case FormatChain:
		b, err := ChainJSON(root, r.opts.Indent)
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatTree:
		s, err := Tree(root, r.styles, r.color)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to render tree")
		}
		return s, nil
	case FormatMarkdown:
		md := Markdown(root)
		if r.color {
			glamourRenderer := &GlamourRenderer{Style: r.opts.Style, Width: r.opts.Width}
			return glamourRenderer.Render(md), nil
		}
		return md, nil
	case FormatYAML:
		b, err := document.Marshal(document.FromNode(root), document.FormatYAML)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported format %q", r.opts.Format)
	}
}

// EnvelopeJSON encodes the envelope, indented when indent is set
func EnvelopeJSON(env actions.Envelope, indent string) ([]byte, error) {
	if indent == "" {
		return env.JSON()
	}
	b, err := json.MarshalIndent(env, "", indent)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode envelope")
	}
	return b, nil
}

// ChainJSON encodes the decoded chain, indented when indent is set
func ChainJSON(root *actions.Node, indent string) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if indent == "" {
		b, err = json.Marshal(root)
	} else {
		b, err = json.MarshalIndent(root, "", indent)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncode, "failed to encode chain of depth %d", root.Depth())
	}
	return b, nil
}
