package flowcontrol

import "errors"

var (
	// ErrLimitBelowAssigned is returned when a stream requests a flow control
	// limit smaller than the limit it was already assigned.
	ErrLimitBelowAssigned = errors.New("requested flow control limit is smaller than the assigned limit")
	// ErrUnsendableStream is returned for streams this endpoint cannot send on,
	// i.e. unidirectional streams opened by the peer.
	ErrUnsendableStream = errors.New("stream is not writable by this endpoint")
	// ErrUpdateOnServer is returned when UpdateInitialValues is called on a
	// server. Only clients replace remembered transport parameter values.
	ErrUpdateOnServer = errors.New("transport parameter update on a server")
)
