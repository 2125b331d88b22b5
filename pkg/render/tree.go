package render

import (
	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const emptyChainLabel = "(empty chain)"

// Tree draws the chain with dialog options as branches. Each option's chain
// hangs below its option.
func Tree(root *actions.Node, styles *Styles, color bool) (string, error) {
	label := func(style, text string) string {
		if !color || styles == nil {
			return text
		}
		return styles.Render(style, text)
	}

	var list pterm.LeveledList
	if root == nil {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: label("muted", emptyChainLabel)})
	} else {
		list = appendChain(list, root, 0, label)
	}

	printer := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list))
	if !color {
		printer = printer.WithTreeStyle(pterm.NewStyle()).WithTextStyle(pterm.NewStyle())
	}
	return printer.Srender()
}

func appendChain(list pterm.LeveledList, root *actions.Node, level int, label func(style, text string) string) pterm.LeveledList {
	root.Walk(func(_ int, n *actions.Node) bool {
		style := n.Type
		if !actions.IsKnownType(style) {
			style = "unknown"
		}
		text := label(style, n.Type)
		if summary := Summary(n); summary != "" {
			text += " " + summary
		}
		list = append(list, pterm.LeveledListItem{Level: level, Text: text})

		for _, opt := range n.Options() {
			list = append(list, pterm.LeveledListItem{Level: level + 1, Text: label("option", opt.Text)})
			if opt.Action == nil {
				list = append(list, pterm.LeveledListItem{Level: level + 2, Text: label("muted", "(no action)")})
				continue
			}
			list = appendChain(list, opt.Action, level+2, label)
		}
		return true
	})
	return list
}
