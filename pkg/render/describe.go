package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/actionq/pkg/actions"
)

// Summary is a one-line description of a node's data
func Summary(n *actions.Node) string {
	str := func(key string) string {
		s, _ := n.Data[key].(string)
		return s
	}

	switch n.Type {
	case actions.TypeNavigation:
		s := fmt.Sprintf("%s → %s", str("name"), str("screen"))
		if params := n.Data["params"]; params != nil {
			s += " " + compactJSON(params)
		}
		return s
	case actions.TypeToast:
		return joinNonEmpty(bracket(str("type")), titled(str("title"), str("textBody")))
	case actions.TypeDialog:
		return titled(str("title"), str("textBody"))
	case actions.TypeLink:
		return str("url")
	case actions.TypeNotification:
		return titled(str("title"), str("body"))
	default:
		return compactJSON(n.Data)
	}
}

func titled(title, body string) string {
	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + ": " + body
	}
}

func bracket(s string) string {
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func compactJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
