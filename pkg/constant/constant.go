package constant

const (
	// AuthHeader carries the session token on requests and on
	// register/login responses.
	AuthHeader = "x-auth"

	// ScopeAuth is the only token scope issued by this service.
	ScopeAuth = "auth"

	MinPasswordLength = 6

	// Fiber Locals keys set by the auth middleware.
	LocalUser  = "user"
	LocalToken = "token"
)
