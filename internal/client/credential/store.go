// Package credential persists the single opaque bearer credential of the
// client process. Exactly zero or one credential exists at any time; an empty
// token means "no credential". The session manager is the only writer, every
// other component reads through Source.
package credential

import "context"

// Source is the read side of the store, consumed by the API gateway client to
// attach the credential to outgoing requests.
type Source interface {
	// Token returns the current credential, or "" when none is stored.
	Token(ctx context.Context) (string, error)
}

// Store is the full persistence capability injected into the session manager.
// Implementations must survive process restarts except for MemoryStore, the
// in-memory test double.
type Store interface {
	Source

	// Save replaces the stored credential.
	Save(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
