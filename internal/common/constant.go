package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the bearer
// token on requests that do not put it in the message body.
const AccessTokenHeaderName = "access_token"
