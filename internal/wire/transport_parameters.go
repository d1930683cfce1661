package wire

import (
	"fmt"

	"github.com/fzn7/kwik/internal/protocol"
	"github.com/fzn7/kwik/quicvarint"
)

type transportParameterID uint64

const (
	initialMaxDataParameterID                 transportParameterID = 0x4
	initialMaxStreamDataBidiLocalParameterID  transportParameterID = 0x5
	initialMaxStreamDataBidiRemoteParameterID transportParameterID = 0x6
	initialMaxStreamDataUniParameterID        transportParameterID = 0x7
)

// TransportParameters are the transport parameters relevant for flow control,
// as exchanged in the TLS handshake.
// The stream data parameters are named from the vantage point of the endpoint
// sending them, see RFC 9000, section 18.2.
type TransportParameters struct {
	InitialMaxData                 protocol.ByteCount
	InitialMaxStreamDataBidiLocal  protocol.ByteCount
	InitialMaxStreamDataBidiRemote protocol.ByteCount
	InitialMaxStreamDataUni        protocol.ByteCount
}

// Unmarshal the transport parameters.
// Unknown parameters are skipped, duplicates of known parameters are rejected.
func (p *TransportParameters) Unmarshal(data []byte) error {
	parsed := make(map[transportParameterID]struct{}, 4)
	b := data
	for len(b) > 0 {
		paramIDInt, l, err := quicvarint.Parse(b)
		if err != nil {
			return replaceUnexpectedEOF(err)
		}
		paramID := transportParameterID(paramIDInt)
		b = b[l:]
		paramLen, l, err := quicvarint.Parse(b)
		if err != nil {
			return replaceUnexpectedEOF(err)
		}
		b = b[l:]
		if uint64(len(b)) < paramLen {
			return fmt.Errorf("remaining length (%d) smaller than parameter length (%d)", len(b), paramLen)
		}

		switch paramID {
		case initialMaxDataParameterID,
			initialMaxStreamDataBidiLocalParameterID,
			initialMaxStreamDataBidiRemoteParameterID,
			initialMaxStreamDataUniParameterID:
			if _, ok := parsed[paramID]; ok {
				return fmt.Errorf("received duplicate transport parameter %#x", uint64(paramID))
			}
			parsed[paramID] = struct{}{}
			val, l, err := quicvarint.Parse(b)
			if err != nil {
				return replaceUnexpectedEOF(err)
			}
			if uint64(l) != paramLen {
				return fmt.Errorf("inconsistent transport parameter length for transport parameter %#x", uint64(paramID))
			}
			switch paramID {
			case initialMaxDataParameterID:
				p.InitialMaxData = protocol.ByteCount(val)
			case initialMaxStreamDataBidiLocalParameterID:
				p.InitialMaxStreamDataBidiLocal = protocol.ByteCount(val)
			case initialMaxStreamDataBidiRemoteParameterID:
				p.InitialMaxStreamDataBidiRemote = protocol.ByteCount(val)
			case initialMaxStreamDataUniParameterID:
				p.InitialMaxStreamDataUni = protocol.ByteCount(val)
			}
		default:
			// skip unknown parameters
		}
		b = b[paramLen:]
	}
	return nil
}

// Marshal appends the transport parameters.
func (p *TransportParameters) Marshal(b []byte) []byte {
	b = p.marshalVarintParam(b, initialMaxDataParameterID, uint64(p.InitialMaxData))
	b = p.marshalVarintParam(b, initialMaxStreamDataBidiLocalParameterID, uint64(p.InitialMaxStreamDataBidiLocal))
	b = p.marshalVarintParam(b, initialMaxStreamDataBidiRemoteParameterID, uint64(p.InitialMaxStreamDataBidiRemote))
	b = p.marshalVarintParam(b, initialMaxStreamDataUniParameterID, uint64(p.InitialMaxStreamDataUni))
	return b
}

func (p *TransportParameters) marshalVarintParam(b []byte, id transportParameterID, val uint64) []byte {
	b = quicvarint.Append(b, uint64(id))
	b = quicvarint.Append(b, uint64(quicvarint.Len(val)))
	return quicvarint.Append(b, val)
}

func (p *TransportParameters) String() string {
	return fmt.Sprintf("&wire.TransportParameters{InitialMaxData: %d, InitialMaxStreamDataBidiLocal: %d, InitialMaxStreamDataBidiRemote: %d, InitialMaxStreamDataUni: %d}",
		p.InitialMaxData, p.InitialMaxStreamDataBidiLocal, p.InitialMaxStreamDataBidiRemote, p.InitialMaxStreamDataUni)
}
