package flowcontrol

import (
	"context"

	"github.com/fzn7/kwik/internal/protocol"
	"github.com/fzn7/kwik/internal/wire"
)

// A SendFlowController keeps track of the flow control limits the peer imposes
// on this endpoint's stream data, both per stream and for the connection as a
// whole. Stream senders reserve send budget before queueing STREAM frames, and
// block until the peer grants more credits when either budget is exhausted.
type SendFlowController interface {
	// IncreaseFlowControlLimit requests to raise the flow control limit for the
	// given stream to requestedLimit. The returned limit can be lower than the
	// requested one when stream or connection credits don't suffice; the offset
	// of the last byte sent on the stream must not exceed it.
	IncreaseFlowControlLimit(id protocol.StreamID, requestedLimit protocol.ByteCount) (protocol.ByteCount, error)
	// SendWindowSize returns the number of bytes that can currently be reserved
	// for the given stream. It is a snapshot: concurrent reservations on other
	// streams can consume connection credits at any time.
	SendWindowSize(id protocol.StreamID) (protocol.ByteCount, error)
	// WaitForCredits blocks until credits are available for the given stream.
	// It returns immediately when the send window is already open, and returns
	// the context's error when ctx is cancelled while waiting.
	WaitForCredits(ctx context.Context, id protocol.StreamID) error
	// HandleMaxDataFrame processes a MAX_DATA frame received from the peer.
	HandleMaxDataFrame(*wire.MaxDataFrame)
	// HandleMaxStreamDataFrame processes a MAX_STREAM_DATA frame received from the peer.
	HandleMaxStreamDataFrame(*wire.MaxStreamDataFrame)
	// UpdateInitialValues replaces remembered flow control limits with the
	// authoritative values from the peer's transport parameters. Only a client
	// may call this: it applies when 0-RTT data was sent under values
	// remembered from a previous connection.
	UpdateInitialValues(*wire.TransportParameters) error
}
