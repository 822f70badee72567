// Package proto defines the gophauth gRPC contract: the service descriptor,
// the client stub and the typed messages. Messages travel as
// google.protobuf.Struct, so the service needs no generated code. auth.proto
// documents the wire shape.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "gophauth.AuthService"

const (
	RegisterFullMethod    = "/" + ServiceName + "/Register"
	LoginFullMethod       = "/" + ServiceName + "/Login"
	VerifyTokenFullMethod = "/" + ServiceName + "/VerifyToken"
	PingFullMethod        = "/" + ServiceName + "/Ping"
)

type RegisterRequest struct {
	Email    string
	Name     string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type VerifyTokenRequest struct {
	Token string
}

type User struct {
	Id    string
	Email string
	Name  string
}

type AuthResponse struct {
	User  User
	Token string
}

type PingResponse struct {
	Status string
}

func (r *RegisterRequest) ToStruct() *structpb.Struct {
	return fields("email", r.Email, "name", r.Name, "password", r.Password)
}

func RegisterRequestFromStruct(s *structpb.Struct) *RegisterRequest {
	return &RegisterRequest{Email: str(s, "email"), Name: str(s, "name"), Password: str(s, "password")}
}

func (r *LoginRequest) ToStruct() *structpb.Struct {
	return fields("email", r.Email, "password", r.Password)
}

func LoginRequestFromStruct(s *structpb.Struct) *LoginRequest {
	return &LoginRequest{Email: str(s, "email"), Password: str(s, "password")}
}

func (r *VerifyTokenRequest) ToStruct() *structpb.Struct {
	return fields("token", r.Token)
}

func VerifyTokenRequestFromStruct(s *structpb.Struct) *VerifyTokenRequest {
	return &VerifyTokenRequest{Token: str(s, "token")}
}

func (r *AuthResponse) ToStruct() *structpb.Struct {
	out := fields("token", r.Token)
	out.Fields["user"] = structpb.NewStructValue(fields("id", r.User.Id, "email", r.User.Email, "name", r.User.Name))
	return out
}

func AuthResponseFromStruct(s *structpb.Struct) *AuthResponse {
	u := s.GetFields()["user"].GetStructValue()
	return &AuthResponse{
		User:  User{Id: str(u, "id"), Email: str(u, "email"), Name: str(u, "name")},
		Token: str(s, "token"),
	}
}

func (r *PingResponse) ToStruct() *structpb.Struct {
	return fields("status", r.Status)
}

func PingResponseFromStruct(s *structpb.Struct) *PingResponse {
	return &PingResponse{Status: str(s, "status")}
}

// fields builds a Struct from alternating key/value string pairs.
func fields(kv ...string) *structpb.Struct {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		s.Fields[kv[i]] = structpb.NewStringValue(kv[i+1])
	}
	return s
}

// str reads a string field; missing fields and nil structs read as "".
func str(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// AuthServiceServer is implemented by the gRPC server.
type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	VerifyToken(context.Context, *VerifyTokenRequest) (*AuthResponse, error)
	Ping(context.Context) (*PingResponse, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// unary adapts a typed call to a grpc method handler. Interceptors see the
// raw *structpb.Struct request.
func unary(fullMethod string, call func(srv AuthServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServiceServer), ctx, req.(*structpb.Struct))
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}

func toStruct(resp interface{ ToStruct() *structpb.Struct }, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, err
	}
	return resp.ToStruct(), nil
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler: unary(RegisterFullMethod, func(srv AuthServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return toStruct(srv.Register(ctx, RegisterRequestFromStruct(in)))
			}),
		},
		{
			MethodName: "Login",
			Handler: unary(LoginFullMethod, func(srv AuthServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return toStruct(srv.Login(ctx, LoginRequestFromStruct(in)))
			}),
		},
		{
			MethodName: "VerifyToken",
			Handler: unary(VerifyTokenFullMethod, func(srv AuthServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return toStruct(srv.VerifyToken(ctx, VerifyTokenRequestFromStruct(in)))
			}),
		},
		{
			MethodName: "Ping",
			Handler: unary(PingFullMethod, func(srv AuthServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return toStruct(srv.Ping(ctx))
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth.proto",
}

// AuthServiceClient is the client stub for AuthService.
type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.auth(ctx, RegisterFullMethod, in.ToStruct(), opts...)
}

func (c *AuthServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.auth(ctx, LoginFullMethod, in.ToStruct(), opts...)
}

func (c *AuthServiceClient) VerifyToken(ctx context.Context, in *VerifyTokenRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return c.auth(ctx, VerifyTokenFullMethod, in.ToStruct(), opts...)
}

func (c *AuthServiceClient) Ping(ctx context.Context, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PingFullMethod, &structpb.Struct{}, out, opts...); err != nil {
		return nil, err
	}
	return PingResponseFromStruct(out), nil
}

func (c *AuthServiceClient) auth(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*AuthResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return AuthResponseFromStruct(out), nil
}
