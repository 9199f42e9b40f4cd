// Package playback hands encoded audio payloads to an output sink.
//
// Every Dispatch opens its own playback session. Nothing is queued, mixed or
// cancelled here: overlapping sessions are left to the output device.
package playback

import (
	"errors"
	"fmt"
)

var (
	ErrNoSink       = errors.New("no playback sink")
	ErrEmptyPayload = errors.New("empty payload")
)

// Sink starts playback of a WAV payload. Play must return once the payload
// is handed off, without waiting for the audio to finish, and must not
// modify the payload.
type Sink interface {
	Play(payload []byte) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(payload []byte) error

func (f SinkFunc) Play(payload []byte) error { return f(payload) }

// Discard accepts every payload and plays nothing.
var Discard Sink = SinkFunc(func([]byte) error { return nil })

// DispatchError reports a payload the sink refused or could not reach.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Dispatcher triggers exactly one playback session per call.
type Dispatcher struct {
	sink Sink
}

// NewDispatcher creates a dispatcher for the given sink.
func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

// Dispatch delivers payload to the sink.
func (d *Dispatcher) Dispatch(payload []byte) error {
	if d == nil || d.sink == nil {
		return &DispatchError{Err: ErrNoSink}
	}
	if len(payload) == 0 {
		return &DispatchError{Err: ErrEmptyPayload}
	}
	if err := d.sink.Play(payload); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}

// Silencer is implemented by sinks that can cut off sessions still sounding.
type Silencer interface {
	Silence()
}
