package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the credential in the authorization header.
const BearerPrefix = "Bearer "
