package flowcontrol

import (
	"context"
	"fmt"
	"sync"

	"github.com/fzn7/kwik/internal/protocol"
	"github.com/fzn7/kwik/internal/utils"
	"github.com/fzn7/kwik/internal/wire"
)

type streamCredits struct {
	// the highest send offset the peer allows on this stream
	allowed protocol.ByteCount
	// the highest send offset handed out to the stream, never exceeds allowed
	assigned protocol.ByteCount
}

type flowController struct {
	perspective protocol.Perspective

	// limits taken from the peer's transport parameters (or remembered values,
	// when sending 0-RTT data), immutable after construction
	initialMaxData                 protocol.ByteCount
	initialMaxStreamDataBidiLocal  protocol.ByteCount
	initialMaxStreamDataBidiRemote protocol.ByteCount
	initialMaxStreamDataUni        protocol.ByteCount

	// guards all counters, connection-wide and per-stream
	mutex           sync.Mutex
	maxDataAllowed  protocol.ByteCount
	maxDataAssigned protocol.ByteCount
	streams         map[protocol.StreamID]*streamCredits
	// closed and replaced whenever a limit rises, waking all waiters
	creditsIncreased chan struct{}

	logger utils.Logger
}

var _ SendFlowController = &flowController{}

// NewFlowController creates a send-side flow controller.
// The initial limits are the ones the peer advertised in its transport
// parameters, or, for a client sending 0-RTT data, the values remembered from
// a previous connection. Each limit must fit into 62 bits.
func NewFlowController(
	perspective protocol.Perspective,
	initialMaxData protocol.ByteCount,
	initialMaxStreamDataBidiLocal protocol.ByteCount,
	initialMaxStreamDataBidiRemote protocol.ByteCount,
	initialMaxStreamDataUni protocol.ByteCount,
	logger utils.Logger,
) (SendFlowController, error) {
	for _, limit := range []protocol.ByteCount{
		initialMaxData,
		initialMaxStreamDataBidiLocal,
		initialMaxStreamDataBidiRemote,
		initialMaxStreamDataUni,
	} {
		if limit < 0 || limit > protocol.MaxByteCount {
			return nil, fmt.Errorf("flow control limit %d doesn't fit into 62 bits", limit)
		}
	}
	if logger == nil {
		logger = utils.DefaultLogger.WithPrefix("Flow control")
	}
	return &flowController{
		perspective:                    perspective,
		initialMaxData:                 initialMaxData,
		initialMaxStreamDataBidiLocal:  initialMaxStreamDataBidiLocal,
		initialMaxStreamDataBidiRemote: initialMaxStreamDataBidiRemote,
		initialMaxStreamDataUni:        initialMaxStreamDataUni,
		maxDataAllowed:                 initialMaxData,
		streams:                        make(map[protocol.StreamID]*streamCredits),
		creditsIncreased:               make(chan struct{}),
		logger:                         logger,
	}, nil
}

func (c *flowController) IncreaseFlowControlLimit(id protocol.StreamID, requestedLimit protocol.ByteCount) (protocol.ByteCount, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	str, err := c.getOrCreateStream(id)
	if err != nil {
		return 0, err
	}
	if requestedLimit < str.assigned {
		return 0, fmt.Errorf("stream %d: %w", id, ErrLimitBelowAssigned)
	}
	increment := min(requestedLimit-str.assigned, c.credits(str))
	str.assigned += increment
	c.maxDataAssigned += increment
	return str.assigned, nil
}

func (c *flowController) SendWindowSize(id protocol.StreamID) (protocol.ByteCount, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	str, err := c.getOrCreateStream(id)
	if err != nil {
		return 0, err
	}
	return c.credits(str), nil
}

func (c *flowController) WaitForCredits(ctx context.Context, id protocol.StreamID) error {
	if c.logger.Debug() {
		// Racy: credits can change before the authoritative check below runs.
		// Only used to log the blocked transition.
		if window, err := c.SendWindowSize(id); err == nil && window == 0 {
			c.logger.Debugf("stream %d blocked", id)
			// Blocking can also be caused by congestion control further up, so no
			// STREAM_DATA_BLOCKED frame is queued at this point.
		}
	}

	var wasBlocked bool
	for {
		c.mutex.Lock()
		str, err := c.getOrCreateStream(id)
		if err != nil {
			c.mutex.Unlock()
			return err
		}
		if c.credits(str) > 0 {
			c.mutex.Unlock()
			break
		}
		wasBlocked = true
		increased := c.creditsIncreased
		c.mutex.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-increased:
			// a limit was raised, recheck the window
		}
	}

	if wasBlocked && c.logger.Debug() {
		c.logger.Debugf("stream %d not blocked anymore", id)
	}
	return nil
}

// HandleMaxDataFrame processes a MAX_DATA frame received from the peer.
func (c *flowController) HandleMaxDataFrame(f *wire.MaxDataFrame) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Frames can be reordered, so the frame's maximum can be smaller than the
	// current limit. Applying it would shrink the window and can deadlock senders.
	if f.MaximumData > c.maxDataAllowed {
		c.maxDataAllowed = f.MaximumData
		c.signalCreditsIncreased()
	}
}

// HandleMaxStreamDataFrame processes a MAX_STREAM_DATA frame received from the peer.
func (c *flowController) HandleMaxStreamDataFrame(f *wire.MaxStreamDataFrame) {
	c.mutex.Lock()
	str, err := c.getOrCreateStream(f.StreamID)
	if err != nil {
		c.mutex.Unlock()
		c.logger.Errorf("Ignoring MAX_STREAM_DATA frame for receive-only stream %d", f.StreamID)
		return
	}
	// see HandleMaxDataFrame for reordered frames
	if f.MaximumStreamData > str.allowed {
		str.allowed = f.MaximumStreamData
		c.signalCreditsIncreased()
	}
	c.mutex.Unlock()
}

func (c *flowController) UpdateInitialValues(params *wire.TransportParameters) error {
	if c.perspective != protocol.PerspectiveClient {
		return ErrUpdateOnServer
	}

	type change struct {
		name     string
		from, to protocol.ByteCount
	}
	var raised, lowered []change

	c.mutex.Lock()
	var increased bool
	if params.InitialMaxData > c.initialMaxData {
		raised = append(raised, change{"initial_max_data", c.initialMaxData, params.InitialMaxData})
		if params.InitialMaxData > c.maxDataAllowed {
			c.maxDataAllowed = params.InitialMaxData
			increased = true
		}
	} else if params.InitialMaxData < c.initialMaxData {
		lowered = append(lowered, change{"initial_max_data", c.initialMaxData, params.InitialMaxData})
	}

	// The stream data parameters are named from the vantage point of the peer,
	// which sent them: its "local" bidirectional streams are the ones the peer
	// opened, its "remote" ones are the streams this endpoint opened.
	if params.InitialMaxStreamDataBidiLocal > c.initialMaxStreamDataBidiLocal {
		raised = append(raised, change{"initial_max_stream_data_bidi_local", c.initialMaxStreamDataBidiLocal, params.InitialMaxStreamDataBidiLocal})
		if c.raiseStreamLimits(params.InitialMaxStreamDataBidiLocal, func(id protocol.StreamID) bool {
			return id.Type() == protocol.StreamTypeBidi && id.InitiatedBy() != c.perspective
		}) {
			increased = true
		}
	} else if params.InitialMaxStreamDataBidiLocal < c.initialMaxStreamDataBidiLocal {
		lowered = append(lowered, change{"initial_max_stream_data_bidi_local", c.initialMaxStreamDataBidiLocal, params.InitialMaxStreamDataBidiLocal})
	}

	if params.InitialMaxStreamDataBidiRemote > c.initialMaxStreamDataBidiRemote {
		raised = append(raised, change{"initial_max_stream_data_bidi_remote", c.initialMaxStreamDataBidiRemote, params.InitialMaxStreamDataBidiRemote})
		if c.raiseStreamLimits(params.InitialMaxStreamDataBidiRemote, func(id protocol.StreamID) bool {
			return id.Type() == protocol.StreamTypeBidi && id.InitiatedBy() == c.perspective
		}) {
			increased = true
		}
	} else if params.InitialMaxStreamDataBidiRemote < c.initialMaxStreamDataBidiRemote {
		lowered = append(lowered, change{"initial_max_stream_data_bidi_remote", c.initialMaxStreamDataBidiRemote, params.InitialMaxStreamDataBidiRemote})
	}

	if params.InitialMaxStreamDataUni > c.initialMaxStreamDataUni {
		raised = append(raised, change{"initial_max_stream_data_uni", c.initialMaxStreamDataUni, params.InitialMaxStreamDataUni})
		if c.raiseStreamLimits(params.InitialMaxStreamDataUni, func(id protocol.StreamID) bool {
			return id.Type() == protocol.StreamTypeUni && id.InitiatedBy() == c.perspective
		}) {
			increased = true
		}
	} else if params.InitialMaxStreamDataUni < c.initialMaxStreamDataUni {
		lowered = append(lowered, change{"initial_max_stream_data_uni", c.initialMaxStreamDataUni, params.InitialMaxStreamDataUni})
	}

	if increased {
		c.signalCreditsIncreased()
	}
	c.mutex.Unlock()

	for _, ch := range raised {
		c.logger.Infof("Increasing %s from %d to %d", ch.name, ch.from, ch.to)
	}
	for _, ch := range lowered {
		// A server must not reduce limits it previously communicated, see
		// RFC 9000, section 7.4.1. Keeping the higher remembered value is safe.
		c.logger.Errorf("Ignoring attempt to reduce %s from %d to %d", ch.name, ch.from, ch.to)
	}
	return nil
}

// raiseStreamLimits raises the allowed limit of every existing entry matching
// the class predicate to newLimit, if that is higher.
// It must be called while holding the mutex.
func (c *flowController) raiseStreamLimits(newLimit protocol.ByteCount, class func(protocol.StreamID) bool) (increased bool) {
	for id, str := range c.streams {
		if !class(id) {
			continue
		}
		if newLimit > str.allowed {
			str.allowed = newLimit
			increased = true
		}
	}
	return increased
}

// credits determines how many more bytes can currently be assigned to the
// stream, bounded by the stream's window and the connection window.
// It must be called while holding the mutex.
func (c *flowController) credits(str *streamCredits) protocol.ByteCount {
	streamCredits := str.allowed - str.assigned
	if connCredits := c.maxDataAllowed - c.maxDataAssigned; connCredits < streamCredits {
		return connCredits
	}
	return streamCredits
}

// getOrCreateStream returns the credit entry for the stream, creating it with
// the applicable initial limit on first use.
// It must be called while holding the mutex.
func (c *flowController) getOrCreateStream(id protocol.StreamID) (*streamCredits, error) {
	if str, ok := c.streams[id]; ok {
		return str, nil
	}
	initialLimit, err := c.initialStreamLimit(id)
	if err != nil {
		return nil, err
	}
	str := &streamCredits{allowed: initialLimit}
	c.streams[id] = str
	return str, nil
}

// initialStreamLimit determines the initial flow control limit for a stream
// this endpoint sends on. The transport parameters carrying these limits take
// the vantage point of the peer, which advertised them: the limit for streams
// this endpoint opened is the peer's "remote" limit.
func (c *flowController) initialStreamLimit(id protocol.StreamID) (protocol.ByteCount, error) {
	switch {
	case id.Type() == protocol.StreamTypeUni:
		if id.InitiatedBy() != c.perspective {
			return 0, fmt.Errorf("stream %d: %w", id, ErrUnsendableStream)
		}
		return c.initialMaxStreamDataUni, nil
	case id.InitiatedBy() == c.perspective:
		return c.initialMaxStreamDataBidiRemote, nil
	default:
		return c.initialMaxStreamDataBidiLocal, nil
	}
}

// signalCreditsIncreased wakes all goroutines blocked in WaitForCredits.
// It must be called while holding the mutex.
func (c *flowController) signalCreditsIncreased() {
	close(c.creditsIncreased)
	c.creditsIncreased = make(chan struct{})
}
