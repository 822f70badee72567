package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	result, err := s.auth.Register(ctx, services.RegisterInput{Email: req.Email, Name: req.Name, Password: req.Password})
	if err != nil {
		return nil, toStatus(err)
	}

	return toResponse(result), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.auth.Login(ctx, services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, toStatus(err)
	}

	return toResponse(result), nil
}

// VerifyToken takes the token from the request body, or from the
// access_token metadata when the body has none.
func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.AuthResponse, error) {

	token := req.Token
	if token == "" {
		token = tokenFromContext(ctx)
	}

	result, err := s.auth.VerifyToken(ctx, token)
	if err != nil {
		return nil, toStatus(err)
	}

	return toResponse(result), nil
}

func (s *GRPCServer) Ping(ctx context.Context) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func toResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		User:  pb.User{Id: r.User.ID, Email: r.User.Email, Name: r.User.Name},
		Token: r.Token,
	}
}

// toStatus maps a service failure to a gRPC status carrying the failure
// message. Anything that is not a *services.Failure is an internal error
// and its text is not exposed.
func toStatus(err error) error {
	var f *services.Failure
	if !errors.As(err, &f) {
		return status.Error(codes.Internal, "internal error")
	}

	switch {
	case errors.Is(f, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, f.Message)
	case errors.Is(f, common.ErrInvalidCredentials), errors.Is(f, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, f.Message)
	case errors.Is(f, common.ErrBadRequest):
		return status.Error(codes.InvalidArgument, f.Message)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
