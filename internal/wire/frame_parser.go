package wire

import (
	"fmt"
	"io"

	"github.com/fzn7/kwik/internal/protocol"
)

// The FrameParser parses the flow control frames of a packet's payload.
// All other frame types are handled by their respective subsystems and are
// rejected here.
type FrameParser struct{}

// ParseNext parses the next frame.
// It returns the frame and the number of bytes consumed.
func (p *FrameParser) ParseNext(b []byte, v protocol.Version) (Frame, int, error) {
	if len(b) == 0 {
		return nil, 0, io.EOF
	}
	typ := b[0]
	var frame Frame
	var l int
	var err error
	switch typ {
	case maxDataFrameType:
		frame, l, err = parseMaxDataFrame(b[1:], v)
	case maxStreamDataFrameType:
		frame, l, err = parseMaxStreamDataFrame(b[1:], v)
	case dataBlockedFrameType:
		frame, l, err = parseDataBlockedFrame(b[1:], v)
	case streamDataBlockedFrameType:
		frame, l, err = parseStreamDataBlockedFrame(b[1:], v)
	default:
		return nil, 0, fmt.Errorf("unknown frame type: %#x", typ)
	}
	if err != nil {
		return nil, 0, err
	}
	return frame, l + 1, nil
}
