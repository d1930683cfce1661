package flowcontrol

import (
	"context"
	"testing"
	"time"

	"github.com/fzn7/kwik/internal/protocol"
	"github.com/fzn7/kwik/internal/wire"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Many streams compete for a connection window that opens up in small
// increments. Every reservation must be covered by credits, and in the end
// every granted byte must be accounted for exactly once.
func TestFlowControllerConcurrentReservations(t *testing.T) {
	const numStreams = 10
	const perStream = protocol.ByteCount(1000)
	fc := newTestFlowController(t, protocol.PerspectiveClient, 100, 0, perStream, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numStreams; i++ {
		id := protocol.StreamID(4 * i)
		g.Go(func() error {
			for {
				limit, err := fc.IncreaseFlowControlLimit(id, perStream)
				if err != nil {
					return err
				}
				if limit == perStream {
					return nil
				}
				if err := fc.WaitForCredits(gctx, id); err != nil {
					return err
				}
			}
		})
	}
	// drip-feed connection credits until every stream can be written in full
	g.Go(func() error {
		for maximum := protocol.ByteCount(200); maximum <= numStreams*perStream; maximum += 100 {
			fc.HandleMaxDataFrame(&wire.MaxDataFrame{MaximumData: maximum})
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	require.NoError(t, g.Wait())

	require.Equal(t, numStreams*perStream, fc.maxDataAssigned)
	for i := 0; i < numStreams; i++ {
		require.Equal(t, perStream, fc.streams[protocol.StreamID(4*i)].assigned)
	}
	checkLedger(t, fc)
}

// Reservations and window updates race on the same stream.
// The ledger must stay consistent throughout.
func TestFlowControllerConcurrentWindowUpdates(t *testing.T) {
	fc := newTestFlowController(t, protocol.PerspectiveClient, 1000, 0, 100, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	const target = protocol.ByteCount(1000)
	g.Go(func() error {
		var assigned protocol.ByteCount
		for assigned < target {
			limit, err := fc.IncreaseFlowControlLimit(0, assigned+10)
			if err != nil {
				return err
			}
			if limit == assigned {
				if err := fc.WaitForCredits(gctx, 0); err != nil {
					return err
				}
				continue
			}
			assigned = limit
		}
		return nil
	})
	g.Go(func() error {
		for maximum := protocol.ByteCount(150); maximum <= target; maximum += 50 {
			fc.HandleMaxStreamDataFrame(&wire.MaxStreamDataFrame{StreamID: 0, MaximumStreamData: maximum})
			time.Sleep(time.Millisecond)
		}
		return nil
	})
	require.NoError(t, g.Wait())

	require.Equal(t, target, fc.streams[0].assigned)
	checkLedger(t, fc)
}
