// Package client is the host-side proxy to the broker daemon. It owns
// one gRPC connection per process, guards every call with a deadline and
// a circuit breaker, and exposes typed facades over the raw RPC surface.
package client

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/wenjunnutter/hailort/internal/broker"
	"github.com/wenjunnutter/hailort/internal/infrastructure/resilience"
	"github.com/wenjunnutter/hailort/internal/status"
	"github.com/wenjunnutter/hailort/internal/stream"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

// DefaultAddr is where the broker daemon listens.
const DefaultAddr = "localhost:50051"

// RequestTimeout bounds every broker call: the longest a data transfer
// may legitimately take, plus slack for the round trip itself.
const RequestTimeout = stream.DefaultTransferTimeout + 500*time.Millisecond

// keepAliveInterval is how often the liveness heartbeat fires. It must
// beat the broker's liveness timeout with margin.
const keepAliveInterval = time.Second

// Client is the per-process broker connection with circuit breaker
type Client struct {
	addr string
	pid  uint32
	log  *zap.Logger

	mu      sync.Mutex
	conn    *grpc.ClientConn
	rpc     pb.BrokerServiceClient
	breaker *resilience.Breaker

	stopKeepAlive chan struct{}
}

// New creates a broker client bound to the current process id. The
// connection is established lazily on first use.
func New(addr string, log *zap.Logger) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		addr:    addr,
		pid:     uint32(os.Getpid()),
		log:     log,
		breaker: newBreaker(),
	}
}

func newBreaker() *resilience.Breaker {
	return resilience.New("broker", resilience.Settings{
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			// Trip if 5+ consecutive failures or 50% failure rate with 10+ requests
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.5)
		},
	})
}

// Pid returns the process id calls are issued under.
func (c *Client) Pid() uint32 { return c.pid }

// ensure dials the broker if no connection is live. Reconnection after a
// fork happens here transparently.
func (c *Client) ensure() (pb.BrokerServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc != nil {
		return c.rpc, nil
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                60 * time.Second,
			Timeout:             20 * time.Second,
			PermitWithoutStream: false,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(10*1024*1024),
			grpc.MaxCallSendMsgSize(10*1024*1024),
		),
	}
	conn, err := grpc.Dial(c.addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}
	c.conn = conn
	c.rpc = pb.NewBrokerServiceClient(conn)

	if err := c.checkVersionLocked(); err != nil {
		_ = conn.Close()
		c.conn = nil
		c.rpc = nil
		return nil, err
	}
	return c.rpc, nil
}

// checkVersionLocked refuses to proceed against a broker with a
// different major version.
func (c *Client) checkVersionLocked() error {
	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()
	reply, err := c.rpc.GetServiceVersion(ctx, &pb.GetServiceVersionRequest{})
	if err != nil {
		return fmt.Errorf("broker version handshake failed: %w", err)
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return err
	}
	if reply.GetVersion().GetMajor() != broker.VersionMajor {
		return status.Errorf(status.InvalidOperation,
			"broker major version %d does not match client %d",
			reply.GetVersion().GetMajor(), broker.VersionMajor)
	}
	return nil
}

// call runs one RPC through the breaker with the standard deadline.
func call[Req any, Reply any](c *Client, fn func(pb.BrokerServiceClient, context.Context, Req) (Reply, error), req Req) (Reply, error) {
	var zero Reply
	rpc, err := c.ensure()
	if err != nil {
		return zero, err
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()
		return fn(rpc, ctx, req)
	})
	if err == resilience.ErrCircuitOpen {
		return zero, status.New(status.NotAvailable, "broker unavailable: circuit breaker open")
	}
	if err != nil {
		return zero, err
	}
	return result.(Reply), nil
}

// StartKeepAlive launches the liveness heartbeat goroutine.
func (c *Client) StartKeepAlive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopKeepAlive != nil {
		return
	}
	stop := make(chan struct{})
	c.stopKeepAlive = stop
	go c.runKeepAlive(stop)
}

func (c *Client) runKeepAlive(stop chan struct{}) {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			reply, err := call(c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.KeepAliveRequest) (*pb.KeepAliveReply, error) {
				return rpc.ClientKeepAlive(ctx, req)
			}, &pb.KeepAliveRequest{Pid: c.pid})
			if err != nil {
				c.log.Warn("keep-alive failed", zap.Error(err))
				continue
			}
			if reply.GetStatus() != uint32(status.Success) {
				c.log.Warn("keep-alive rejected",
					zap.String("status", status.Code(reply.GetStatus()).String()))
			}
		}
	}
}

// Close shuts the connection and stops the heartbeat. The client may be
// used again afterwards; it reconnects lazily.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopKeepAlive != nil {
		close(c.stopKeepAlive)
		c.stopKeepAlive = nil
	}
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.rpc = nil
	return err
}

// PrepareFork must be called before the process forks: gRPC connections
// do not survive into the child.
func (c *Client) PrepareFork() error {
	return c.Close()
}

// AfterForkInChild rebinds the client to the child's pid. The connection
// is re-established lazily; callers then DupHandle their inherited
// resources.
func (c *Client) AfterForkInChild() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pid = uint32(os.Getpid())
	c.breaker = newBreaker()
}

// ServiceVersion fetches the broker version.
func (c *Client) ServiceVersion() (major, minor, revision uint32, err error) {
	reply, err := call(c, func(rpc pb.BrokerServiceClient, ctx context.Context, req *pb.GetServiceVersionRequest) (*pb.GetServiceVersionReply, error) {
		return rpc.GetServiceVersion(ctx, req)
	}, &pb.GetServiceVersionRequest{})
	if err != nil {
		return 0, 0, 0, err
	}
	if err := status.Err(status.Code(reply.GetStatus())); err != nil {
		return 0, 0, 0, err
	}
	v := reply.GetVersion()
	return v.GetMajor(), v.GetMinor(), v.GetRevision(), nil
}
