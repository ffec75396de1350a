package ports

// Principal is the authenticated identity derived from a verified token.
// It carries only the claims the token issuer signs; the underlying User
// record is always reloaded before any effect.
type Principal struct {
	ID       int64
	Username string
	Role     string
}
