package actions

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/actionq/pkg/errors"
)

// EnvelopeKey is the single key of the wire envelope
const EnvelopeKey = "action"

// Envelope is the outermost wire value. Action holds the chain as JSON text.
type Envelope struct {
	Action string `json:"action"`
}

// Map returns the envelope as a single-key map
func (e Envelope) Map() map[string]string {
	return map[string]string{EnvelopeKey: e.Action}
}

// IsEmpty reports whether the envelope carries no chain
func (e Envelope) IsEmpty() bool {
	trimmed := bytes.TrimSpace([]byte(e.Action))
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// JSON encodes the envelope itself
func (e Envelope) JSON() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode envelope")
	}
	return b, nil
}

// Chain decodes the chain text carried by the envelope.
// A null chain decodes to nil.
func (e Envelope) Chain() (*Node, error) {
	if e.IsEmpty() {
		return nil, nil
	}
	var root *Node
	if err := json.Unmarshal([]byte(e.Action), &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "failed to decode action chain")
	}
	return root, nil
}

// ParseEnvelope decodes envelope JSON and the chain text inside it
func ParseEnvelope(data []byte) (*Node, error) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	return env.Chain()
}

// DecodeEnvelope decodes envelope JSON without decoding the chain text
func DecodeEnvelope(data []byte) (Envelope, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Envelope{}, errors.Wrap(err, errors.ErrDecode, "failed to decode envelope")
	}

	value, ok := raw[EnvelopeKey]
	if !ok {
		return Envelope{}, errors.Newf(errors.ErrDecode, "envelope has no %q key", EnvelopeKey)
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return Envelope{}, errors.Wrapf(err, errors.ErrDecode,
			"envelope %q must be a JSON string", EnvelopeKey)
	}

	return Envelope{Action: text}, nil
}

// EnvelopeFor encodes root directly, without a Queue
func EnvelopeFor(root *Node) (Envelope, error) {
	encoded, err := json.Marshal(root)
	if err != nil {
		return Envelope{}, errors.Wrap(err, errors.ErrEncode, "failed to encode action chain")
	}
	return Envelope{Action: string(encoded)}, nil
}
