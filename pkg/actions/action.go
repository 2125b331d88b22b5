package actions

// Discriminants for the supported action variants
const (
	TypeNavigation   = "navigation"
	TypeToast        = "toast"
	TypeDialog       = "dialog"
	TypeLink         = "link"
	TypeNotification = "notification"
)

// KnownTypes lists every discriminant in a stable order
var KnownTypes = []string{
	TypeNavigation,
	TypeToast,
	TypeDialog,
	TypeLink,
	TypeNotification,
}

// IsKnownType reports whether t is one of the supported discriminants
func IsKnownType(t string) bool {
	for _, known := range KnownTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Fields maps a variant's declared field names to their values.
type Fields map[string]interface{}

// Action is a single client-side effect.
// Type returns the fixed discriminant and Data returns exactly the fields the
// variant declares, each key present even when its value is empty.
type Action interface {
	Type() string
	Data() Fields
}

var (
	_ Action = Navigation{}
	_ Action = Toast{}
	_ Action = (*Dialog)(nil)
	_ Action = Link{}
	_ Action = Notification{}
)

// Navigation moves the client to a screen
type Navigation struct {
	Name   string
	Screen string
	Params interface{}
}

func (Navigation) Type() string { return TypeNavigation }

func (a Navigation) Data() Fields {
	return Fields{
		"name":   a.Name,
		"screen": a.Screen,
		"params": a.Params,
	}
}

// Toast shows a short message. Kind is emitted under the "type" data key.
type Toast struct {
	Kind     string
	Title    string
	TextBody string
}

func (Toast) Type() string { return TypeToast }

func (a Toast) Data() Fields {
	return Fields{
		"type":     a.Kind,
		"title":    a.Title,
		"textBody": a.TextBody,
	}
}

// Link opens a URL
type Link struct {
	URL string
}

func (Link) Type() string { return TypeLink }

func (a Link) Data() Fields {
	return Fields{
		"url": a.URL,
	}
}

// Notification posts a notification on the client
type Notification struct {
	Title string
	Body  string
}

func (Notification) Type() string { return TypeNotification }

func (a Notification) Data() Fields {
	return Fields{
		"title": a.Title,
		"body":  a.Body,
	}
}

// ToRecord projects an action onto a fresh chain node with no successor.
// Every call returns a distinct node, so adding the same action twice yields
// two nodes.
func ToRecord(a Action) *Node {
	return &Node{
		Type: a.Type(),
		Data: a.Data(),
	}
}
