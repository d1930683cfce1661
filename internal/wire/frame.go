package wire

import (
	"io"

	"github.com/fzn7/kwik/internal/protocol"
)

// A Frame in QUIC
type Frame interface {
	Append(b []byte, version protocol.Version) ([]byte, error)
	Length(version protocol.Version) protocol.ByteCount
}

const (
	maxDataFrameType           = 0x10
	maxStreamDataFrameType     = 0x11
	dataBlockedFrameType       = 0x14
	streamDataBlockedFrameType = 0x15
)

func replaceUnexpectedEOF(e error) error {
	if e == io.ErrUnexpectedEOF {
		return io.EOF
	}
	return e
}
