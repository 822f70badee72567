package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc"
)

// AuthService is the business API exposed over gRPC.
type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, in services.LoginInput) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*services.AuthResult, error)
}

type GRPCServer struct {
	address         string
	shutdownTimeout time.Duration
	auth            AuthService
	logger          logging.Logger
}

// NewGRPCServer creates a server for address. A zero shutdownTimeout waits
// for in-flight calls indefinitely on stop.
func NewGRPCServer(address string, shutdownTimeout time.Duration, l logging.Logger, as AuthService) *GRPCServer {
	return &GRPCServer{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "grpc_server"),
		auth:            as,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.loggingInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterAuthServiceServer(srv, s)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

// stop drains in-flight calls, falling back to a hard stop after the
// shutdown timeout.
func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		srv.Stop()
	}
}
