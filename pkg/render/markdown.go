package render

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/charmbracelet/glamour"
)

// Markdown writes the chain as a numbered outline
func Markdown(root *actions.Node) string {
	var b strings.Builder
	b.WriteString("# Action chain\n\n")
	if root == nil {
		b.WriteString("_" + emptyChainLabel + "_\n")
		return b.String()
	}
	writeMarkdownChain(&b, root, "")
	return b.String()
}

func writeMarkdownChain(b *strings.Builder, root *actions.Node, indent string) {
	root.Walk(func(i int, n *actions.Node) bool {
		line := fmt.Sprintf("%s%d. **%s**", indent, i+1, n.Type)
		if summary := Summary(n); summary != "" {
			line += " " + escapeMarkdown(summary)
		}
		b.WriteString(line + "\n")

		for _, opt := range n.Options() {
			b.WriteString(fmt.Sprintf("%s   - *%s*", indent, escapeMarkdown(opt.Text)))
			if opt.Action == nil {
				b.WriteString(" (no action)\n")
				continue
			}
			b.WriteString("\n")
			writeMarkdownChain(b, opt.Action, indent+"     ")
		}
		return true
	})
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// GlamourRenderer renders markdown for terminals
type GlamourRenderer struct {
	Style string // "auto", a glamour style name or a path to a style file
	Width int    // 0 keeps glamour's default wrapping
}

// Render converts markdown to styled terminal output, returning content
// unchanged if glamour fails
func (r *GlamourRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
