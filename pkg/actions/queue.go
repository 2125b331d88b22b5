package actions

import (
	"reflect"
	"sync"

	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/rs/zerolog"
)

// Queue accumulates actions into a single right-nested chain.
// The first added action is the root; each later action becomes the successor
// of the deepest node. Queue is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	root   *Node
	logger zerolog.Logger
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{
		logger: logging.GetLogger("actions.queue"),
	}
}

// Add appends a to the chain and returns the queue for chaining.
// Nil actions, typed nil pointers included, and dialogs not built by
// NewDialog are ignored.
func (q *Queue) Add(a Action) *Queue {
	if isNilAction(a) {
		q.logger.Warn().Msg("Ignoring nil action")
		return q
	}
	if d, ok := a.(*Dialog); ok && !d.Valid() {
		q.logger.Warn().
			Str("title", d.Title).
			Msg("Ignoring dialog not built by NewDialog")
		return q
	}

	rec := ToRecord(a)

	q.mu.Lock()
	defer q.mu.Unlock()

	// The root handle is exposed by Queue and callers may relink or cut the
	// chain through it, so the deepest node is found from the root every time.
	if q.root == nil {
		q.root = rec
	} else {
		q.root.Last().Action = rec
	}

	q.logger.Trace().
		Str("type", rec.Type).
		Msg("Action added to chain")

	return q
}

func isNilAction(a Action) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}

// AddAll appends each action in order
func (q *Queue) AddAll(actions ...Action) *Queue {
	for _, a := range actions {
		q.Add(a)
	}
	return q
}

// Queue returns the live root of the chain, nil while empty.
// Mutations through the returned node are visible to the queue; use Snapshot
// for an isolated copy.
func (q *Queue) Queue() *Node {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.root
}

// Snapshot returns a deep copy of the current chain
func (q *Queue) Snapshot() *Node {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.root.Clone()
}

// Len returns the number of nodes in the chain
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.root.Depth()
}

// IsEmpty reports whether no action has been added
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.root == nil
}

// Serialize encodes the chain into the wire envelope.
// An empty queue encodes as {"action": "null"}.
func (q *Queue) Serialize() (Envelope, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	env, err := EnvelopeFor(q.root)
	if err != nil {
		return Envelope{}, err
	}

	q.logger.Debug().
		Int("depth", q.root.Depth()).
		Int("bytes", len(env.Action)).
		Msg("Chain serialized")

	return env, nil
}

// MustSerialize is like Serialize but panics if the chain cannot be encoded.
// Chains built only from the variant types with JSON-compatible params never fail.
func (q *Queue) MustSerialize() Envelope {
	env, err := q.Serialize()
	if err != nil {
		panic(err)
	}
	return env
}
