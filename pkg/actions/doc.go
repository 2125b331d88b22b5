// Package actions builds the nested action chains consumed by client renderers.
//
// An action chain describes what a client should do in order: navigate to a
// screen, then show a toast, then open a dialog whose options trigger chains of
// their own. Each action is one of a closed set of variants (Navigation, Toast,
// Dialog, Link, Notification) and projects to a record of the form
//
//	{"type": "<discriminant>", "data": {...declared fields...}}
//
// A Queue links records so that every added action becomes the successor of the
// previously added one:
//
//	{"type": "toast", "data": {...}, "action": {"type": "link", "data": {...}}}
//
// Serialize wraps the chain in the wire envelope. The envelope carries the chain
// as JSON text, not as an embedded object:
//
//	{"action": "{\"type\":\"toast\",...}"}
//
// The key "action" therefore means two things: in the envelope it holds the
// encoded chain, inside a decoded node it points at the next node. Clients
// depend on both, so neither is renamed.
package actions
