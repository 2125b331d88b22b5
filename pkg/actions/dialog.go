package actions

import (
	"github.com/arthur-debert/actionq/pkg/errors"
)

// Messages carried by InvalidConstruction errors
const (
	MsgEmptyOptions    = "empty options"
	MsgWrongOptionType = "wrong option type"
)

// DialogOption is a labelled choice inside a Dialog.
// The zero value is not a valid option; use NewDialogOption.
type DialogOption struct {
	text   string
	action *Node
	built  bool
}

// NewDialogOption pairs a label with the chain triggered when it is selected.
// The chain's current structure is copied, so later Add calls on chain do not
// reach the option. A nil or empty chain produces an option whose action is null.
func NewDialogOption(text string, chain *Queue) DialogOption {
	var snapshot *Node
	if chain != nil {
		snapshot = chain.Snapshot()
	}
	return DialogOption{
		text:   text,
		action: snapshot,
		built:  true,
	}
}

// Text returns the option label
func (o DialogOption) Text() string {
	return o.text
}

// Action returns a copy of the captured chain, nil when the option does nothing
func (o DialogOption) Action() *Node {
	return o.action.Clone()
}

// Valid reports whether the option was produced by NewDialogOption
func (o DialogOption) Valid() bool {
	return o.built
}

// Record returns the wire form of the option
func (o DialogOption) Record() OptionRecord {
	return OptionRecord{
		Text:   o.text,
		Action: o.action.Clone(),
	}
}

// OptionRecord is the encoded form of a dialog option.
// Action is always emitted, as null when the option triggers nothing.
type OptionRecord struct {
	Text   string `json:"text"`
	Action *Node  `json:"action"`
}

// Dialog asks the user to pick one of its options.
// The zero value is not a valid dialog; use NewDialog.
type Dialog struct {
	Title    string
	TextBody string
	options  []DialogOption
	built    bool
}

// NewDialog validates the options and builds a dialog.
// It fails with ErrInvalidConstruction when options is empty or when any
// element is not a constructed DialogOption. No partial dialog is returned.
func NewDialog(title, textBody string, options []DialogOption) (*Dialog, error) {
	if len(options) == 0 {
		return nil, errors.New(errors.ErrInvalidConstruction, MsgEmptyOptions)
	}
	for i, opt := range options {
		if !opt.Valid() {
			return nil, errors.New(errors.ErrInvalidConstruction, MsgWrongOptionType).
				WithDetail("index", i)
		}
	}

	owned := make([]DialogOption, len(options))
	copy(owned, options)

	return &Dialog{
		Title:    title,
		TextBody: textBody,
		options:  owned,
		built:    true,
	}, nil
}

// Valid reports whether the dialog was produced by NewDialog
func (d *Dialog) Valid() bool {
	return d != nil && d.built
}

// Options returns the dialog's options
func (d *Dialog) Options() []DialogOption {
	if d == nil {
		return nil
	}
	out := make([]DialogOption, len(d.options))
	copy(out, d.options)
	return out
}

func (d *Dialog) Type() string { return TypeDialog }

func (d *Dialog) Data() Fields {
	if d == nil {
		return Fields{
			"title":    "",
			"textBody": "",
			"options":  []OptionRecord{},
		}
	}
	records := make([]OptionRecord, len(d.options))
	for i, opt := range d.options {
		records[i] = opt.Record()
	}
	return Fields{
		"title":    d.Title,
		"textBody": d.TextBody,
		"options":  records,
	}
}
