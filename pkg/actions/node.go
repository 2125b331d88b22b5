package actions

import (
	"bytes"
	"encoding/json"
)

// Node is one link of an action chain.
// Action points at the successor and is omitted from the encoding when nil.
type Node struct {
	Type   string `json:"type"`
	Data   Fields `json:"data"`
	Action *Node  `json:"action,omitempty"`
}

// UnmarshalJSON decodes a node, keeping numbers exact and restoring dialog
// options to OptionRecord values so decoded chains can be walked like built ones.
func (n *Node) UnmarshalJSON(b []byte) error {
	var raw struct {
		Type   string          `json:"type"`
		Data   json.RawMessage `json:"data"`
		Action *Node           `json:"action"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var data Fields
	if len(raw.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw.Data))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return err
		}
	}

	if raw.Type == TypeDialog && data != nil {
		if _, ok := data["options"]; ok {
			var opts struct {
				Options []OptionRecord `json:"options"`
			}
			if err := json.Unmarshal(raw.Data, &opts); err != nil {
				return err
			}
			data["options"] = opts.Options
		}
	}

	n.Type = raw.Type
	n.Data = data
	n.Action = raw.Action
	return nil
}

// Clone returns a deep copy of the chain starting at n. Nil clones to nil.
func (n *Node) Clone() *Node {
	var head, prev *Node
	for cur := n; cur != nil; cur = cur.Action {
		c := &Node{Type: cur.Type, Data: cur.Data.clone()}
		if prev == nil {
			head = c
		} else {
			prev.Action = c
		}
		prev = c
	}
	return head
}

// Depth returns the number of nodes reachable through action links
func (n *Node) Depth() int {
	depth := 0
	for cur := n; cur != nil; cur = cur.Action {
		depth++
	}
	return depth
}

// Last returns the deepest node, nil for an empty chain
func (n *Node) Last() *Node {
	if n == nil {
		return nil
	}
	cur := n
	for cur.Action != nil {
		cur = cur.Action
	}
	return cur
}

// Types returns the discriminants in chain order
func (n *Node) Types() []string {
	var types []string
	for cur := n; cur != nil; cur = cur.Action {
		types = append(types, cur.Type)
	}
	return types
}

// Walk visits the chain in order. Nested dialog chains are not visited; use
// Options to reach them. Returning false stops the walk.
func (n *Node) Walk(fn func(index int, node *Node) bool) {
	i := 0
	for cur := n; cur != nil; cur = cur.Action {
		if !fn(i, cur) {
			return
		}
		i++
	}
}

// Options returns the dialog options of a dialog node, nil for other types
func (n *Node) Options() []OptionRecord {
	if n == nil || n.Type != TypeDialog {
		return nil
	}
	opts, _ := n.Data["options"].([]OptionRecord)
	return opts
}

func (f Fields) clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []OptionRecord:
		out := make([]OptionRecord, len(val))
		for i, opt := range val {
			out[i] = OptionRecord{Text: opt.Text, Action: opt.Action.Clone()}
		}
		return out
	case Fields:
		return val.clone()
	case map[string]interface{}:
		return map[string]interface{}(Fields(val).clone())
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
