package document

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
)

// Build adds every step of doc to a new queue, in order.
// Dialog option steps build their own queues, captured by NewDialogOption.
// Errors carry the failing step path, e.g. actions[1].options[0].actions[2].
func Build(doc *Document) (*actions.Queue, error) {
	logger := logging.GetLogger("document.build")

	q := actions.NewQueue()
	if doc == nil {
		return q, nil
	}
	if err := addSteps(q, doc.Actions, "actions"); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("steps", len(doc.Actions)).
		Int("depth", q.Len()).
		Msg("Document built")

	return q, nil
}

func addSteps(q *actions.Queue, steps []Step, prefix string) error {
	for i, step := range steps {
		a, err := stepAction(step, fmt.Sprintf("%s[%d]", prefix, i))
		if err != nil {
			return err
		}
		q.Add(a)
	}
	return nil
}

// stepAction converts one step into its variant
func stepAction(step Step, path string) (actions.Action, error) {
	switch step.Type {
	case actions.TypeNavigation:
		return actions.Navigation{Name: step.Name, Screen: step.Screen, Params: step.Params}, nil
	case actions.TypeToast:
		return actions.Toast{Kind: step.Kind, Title: step.Title, TextBody: step.TextBody}, nil
	case actions.TypeLink:
		return actions.Link{URL: step.URL}, nil
	case actions.TypeNotification:
		return actions.Notification{Title: step.Title, Body: step.Body}, nil
	case actions.TypeDialog:
		options := make([]actions.DialogOption, 0, len(step.Options))
		for j, opt := range step.Options {
			sub := actions.NewQueue()
			if err := addSteps(sub, opt.Actions, fmt.Sprintf("%s.options[%d].actions", path, j)); err != nil {
				return nil, err
			}
			options = append(options, actions.NewDialogOption(opt.Text, sub))
		}
		dialog, err := actions.NewDialog(step.Title, step.TextBody, options)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidConstruction, "invalid dialog at %s", path).
				WithDetail("step", path)
		}
		return dialog, nil
	default:
		return nil, errors.Newf(errors.ErrUnknownAction, "unknown action type %q at %s", step.Type, path).
			WithDetail("step", path).
			WithDetail("valid", actions.KnownTypes)
	}
}

// FromNode converts a chain back into a document. Unknown node types are kept
// with only their type set, so Build reports them.
func FromNode(root *actions.Node) *Document {
	doc := &Document{}
	root.Walk(func(_ int, n *actions.Node) bool {
		doc.Actions = append(doc.Actions, stepFromNode(n))
		return true
	})
	return doc
}

func stepFromNode(n *actions.Node) Step {
	step := Step{Type: n.Type}
	str := func(key string) string {
		s, _ := n.Data[key].(string)
		return s
	}

	switch n.Type {
	case actions.TypeNavigation:
		step.Name = str("name")
		step.Screen = str("screen")
		step.Params = plainValue(n.Data["params"])
	case actions.TypeToast:
		step.Kind = str("type")
		step.Title = str("title")
		step.TextBody = str("textBody")
	case actions.TypeLink:
		step.URL = str("url")
	case actions.TypeNotification:
		step.Title = str("title")
		step.Body = str("body")
	case actions.TypeDialog:
		step.Title = str("title")
		step.TextBody = str("textBody")
		for _, opt := range n.Options() {
			step.Options = append(step.Options, Option{
				Text:    opt.Text,
				Actions: FromNode(opt.Action).Actions,
			})
		}
	}
	return step
}

// plainValue turns decoded JSON values into types every document encoder
// understands
func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case actions.Fields:
		return plainValue(map[string]interface{}(val))
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
