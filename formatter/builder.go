package formatter

import (
	"errors"
	"fmt"
)

// ErrBuilderState is returned when a Builder call is not valid in the
// current state
var ErrBuilderState = errors.New("invalid builder call")

// State is the position of a Builder in the value being assembled
type State int

const (
	StateEmpty State = iota
	StateInArray
	StateInObjectExpectingKey
	StateInObjectExpectingValue
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInArray:
		return "in array"
	case StateInObjectExpectingKey:
		return "in object expecting key"
	case StateInObjectExpectingValue:
		return "in object expecting value"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

type frame struct {
	array  []any
	object map[string]any
	key    *string
}

func (f *frame) isObject() bool { return f.object != nil }

// Builder assembles one JSON value. Objects become map[string]any, arrays
// []any; scalars are stored as given.
//
// Example:
//
//	b := formatter.NewBuilder()
//	b.StartArray().
//	    StartDict().Key("request_id").Value(1).Key("buses").Value([]any{}).EndDict().
//	    EndArray()
//	v, err := b.Build()
type Builder struct {
	stack []*frame
	root  any
	done  bool
	err   error
}

func NewBuilder() *Builder { return &Builder{} }

// State reports where the builder is
func (b *Builder) State() State {
	if b.done {
		return StateDone
	}
	if len(b.stack) == 0 {
		return StateEmpty
	}
	top := b.stack[len(b.stack)-1]
	switch {
	case !top.isObject():
		return StateInArray
	case top.key == nil:
		return StateInObjectExpectingKey
	default:
		return StateInObjectExpectingValue
	}
}

// Err returns the first misuse error, if any
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(op string) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s while %s", ErrBuilderState, op, b.State())
	}
	return b
}

func (b *Builder) acceptsValue() bool {
	switch b.State() {
	case StateEmpty, StateInArray, StateInObjectExpectingValue:
		return true
	}
	return false
}

// Key names the next value of the current object
func (b *Builder) Key(key string) *Builder {
	if b.err != nil {
		return b
	}
	if b.State() != StateInObjectExpectingKey {
		return b.fail(fmt.Sprintf("Key(%q)", key))
	}
	b.stack[len(b.stack)-1].key = &key
	return b
}

// Value adds a complete value
func (b *Builder) Value(v any) *Builder {
	if b.err != nil {
		return b
	}
	if !b.acceptsValue() {
		return b.fail("Value")
	}
	b.put(v)
	return b
}

func (b *Builder) put(v any) {
	if len(b.stack) == 0 {
		b.root = v
		b.done = true
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.isObject() {
		top.object[*top.key] = v
		top.key = nil
		return
	}
	top.array = append(top.array, v)
}

func (b *Builder) StartDict() *Builder {
	if b.err != nil {
		return b
	}
	if !b.acceptsValue() {
		return b.fail("StartDict")
	}
	b.stack = append(b.stack, &frame{object: map[string]any{}})
	return b
}

func (b *Builder) EndDict() *Builder {
	if b.err != nil {
		return b
	}
	if b.State() != StateInObjectExpectingKey {
		return b.fail("EndDict")
	}
	top := b.pop()
	b.put(top.object)
	return b
}

func (b *Builder) StartArray() *Builder {
	if b.err != nil {
		return b
	}
	if !b.acceptsValue() {
		return b.fail("StartArray")
	}
	b.stack = append(b.stack, &frame{array: []any{}})
	return b
}

func (b *Builder) EndArray() *Builder {
	if b.err != nil {
		return b
	}
	if b.State() != StateInArray {
		return b.fail("EndArray")
	}
	top := b.pop()
	b.put(top.array)
	return b
}

func (b *Builder) pop() *frame {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top
}

// Build returns the finished value
func (b *Builder) Build() (any, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.done {
		return nil, fmt.Errorf("%w: Build while %s", ErrBuilderState, b.State())
	}
	return b.root, nil
}
