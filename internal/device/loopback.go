package device

import (
	"context"

	"github.com/wenjunnutter/hailort/internal/status"
)

// loopbackChannel is the software transfer engine behind emulated devices.
// Input transfers are swallowed, output transfers produce zero frames. A
// cancelled context surfaces as ABORTED_BY_USER, a deadline as TIMEOUT,
// matching the contract real channels follow.
type loopbackChannel struct {
	name   string
	dir    Direction
	closed chan struct{}
}

func openLoopback(streamName string, dir Direction, _ Transport) (Channel, error) {
	return &loopbackChannel{
		name:   streamName,
		dir:    dir,
		closed: make(chan struct{}),
	}, nil
}

func (c *loopbackChannel) Transfer(ctx context.Context, p []byte) error {
	select {
	case <-c.closed:
		return status.Errorf(status.InternalFailure, "channel %s is closed", c.name)
	case <-ctx.Done():
		return ctxError(ctx)
	default:
	}

	if c.dir == DeviceToHost {
		for i := range p {
			p[i] = 0
		}
	}
	return nil
}

func (c *loopbackChannel) Close() error {
	select {
	case <-c.closed:
		return nil
	default:
		close(c.closed)
	}
	return nil
}

// ctxError maps context termination onto the status taxonomy. Cancellation
// is the abort primitive and must not look like a fault.
func ctxError(ctx context.Context) error {
	if ctx.Err() == context.DeadlineExceeded {
		return status.New(status.Timeout, "transfer timed out")
	}
	return status.New(status.AbortedByUser, "transfer aborted")
}
