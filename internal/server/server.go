// Package server assembles the broker daemon: the gRPC listener the
// clients talk to plus the HTTP admin surface for health and metrics.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/wenjunnutter/hailort/internal/api/admin"
	"github.com/wenjunnutter/hailort/internal/api/middleware"
	"github.com/wenjunnutter/hailort/internal/broker"
	"github.com/wenjunnutter/hailort/internal/infrastructure/config"
	"github.com/wenjunnutter/hailort/internal/infrastructure/logging"
	"github.com/wenjunnutter/hailort/internal/infrastructure/monitoring"
	"github.com/wenjunnutter/hailort/internal/infrastructure/tracing"
	pb "github.com/wenjunnutter/hailort/proto/broker"
)

const maxMessageSize = 10 * 1024 * 1024

// Server wraps the gRPC broker and the admin HTTP server.
type Server struct {
	config  *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
	service *broker.Service
	grpc    *grpc.Server
	admin   *http.Server
}

// NewServer creates a broker daemon instance.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing broker",
		zap.String("grpc_addr", cfg.GRPC.Address),
		zap.Duration("liveness_timeout", cfg.Liveness.Timeout),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("broker", logger.Logger)

	service := broker.NewService(broker.Config{
		LivenessTimeout: cfg.Liveness.Timeout,
		SweepInterval:   cfg.Liveness.SweepInterval,
	}, metrics, logger.Logger)

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.ChainUnaryInterceptor(
			tracing.GRPCUnaryInterceptor(tracer),
			monitoring.UnaryInterceptor(metrics, logger.Logger),
		),
	)
	pb.RegisterBrokerServiceServer(grpcServer, service)

	s := &Server{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		service: service,
		grpc:    grpcServer,
	}
	if cfg.Admin.Enabled {
		s.admin = &http.Server{
			Addr:    cfg.Admin.Host + ":" + cfg.Admin.Port,
			Handler: s.buildAdminRouter(),
		}
	}
	return s, nil
}

func (s *Server) buildAdminRouter() *gin.Engine {
	if !s.config.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(s.tracer))
	router.Use(monitoring.Middleware(s.metrics))
	if s.config.RateLimit.Enabled {
		s.logger.Info("Rate limiting enabled",
			zap.Int("rps", s.config.RateLimit.RequestsPerSecond),
			zap.Int("burst", s.config.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: s.config.RateLimit.RequestsPerSecond,
			Burst:             s.config.RateLimit.Burst,
		}))
	}

	handlers := admin.NewHandlers(s.service)
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Run serves until one of the listeners fails or Close is called.
func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.config.GRPC.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.GRPC.Address, err)
	}

	s.service.Start()

	var g errgroup.Group
	g.Go(func() error {
		s.logger.Info("Broker gRPC server listening", zap.String("addr", s.config.GRPC.Address))
		return s.grpc.Serve(listener)
	})
	if s.admin != nil {
		g.Go(func() error {
			s.logger.Info("Admin HTTP server listening", zap.String("addr", s.admin.Addr))
			if err := s.admin.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// Close drains both listeners and stops the liveness sweeper.
func (s *Server) Close() error {
	s.logger.Info("Shutting down broker...")

	if s.admin != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.admin.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down admin server", zap.Error(err))
		}
	}
	s.grpc.GracefulStop()
	s.service.Stop()

	s.logger.Sync()
	return nil
}
