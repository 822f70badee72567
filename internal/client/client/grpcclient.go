package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authAPI is the subset of *pb.AuthServiceClient used here.
type authAPI interface {
	Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error)
	Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error)
	VerifyToken(ctx context.Context, in *pb.VerifyTokenRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error)
	Ping(ctx context.Context, opts ...grpc.CallOption) (*pb.PingResponse, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      authAPI
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient prepares a lazy connection to endpointURL. A zero timeout
// leaves deadlines to the caller's context.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, email, name string, password []byte) (*AuthResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Name: name, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err, common.ErrUnauthorized)
	}
	return toResult(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err, common.ErrInvalidCredentials)
	}
	return toResult(resp), nil
}

// VerifyToken sends token in the access_token metadata and returns the
// identity with a freshly minted token.
func (s *GRPCClient) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	ctx = withAccessToken(ctx, token)

	resp, err := s.client.VerifyToken(ctx, &pb.VerifyTokenRequest{})
	if err != nil {
		return nil, s.mapError(err, common.ErrUnauthorized)
	}
	return toResult(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx)
	if err != nil {
		return s.mapError(err, common.ErrUnauthorized)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func toResult(resp *pb.AuthResponse) *AuthResult {
	return &AuthResult{
		User:  Identity{ID: resp.User.Id, Email: resp.User.Email, Name: resp.User.Name},
		Token: resp.Token,
	}
}

// mapError converts a gRPC status to a sentinel kind. unauthenticated is the
// kind reported for codes.Unauthenticated, which differs per call.
func (s *GRPCClient) mapError(err error, unauthenticated error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrAlreadyExists, st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", unauthenticated, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrBadRequest, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
