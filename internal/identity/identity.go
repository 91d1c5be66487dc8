// Package identity supplies the current actor id and bearer credential. The
// core consumes exactly these two values; token acquisition and refresh live
// outside this module.
package identity

// Identity is the pair read at mutation time. Either field may be nil when
// the external provider has not resolved yet.
type Identity struct {
	ActorID *string
	Token   *string
}

// Provider yields the current identity. Callers must not cache the result
// across mutations.
type Provider interface {
	Identity() Identity
}

// Static is a Provider with fixed values, fed from config or env.
type Static struct {
	actorID *string
	token   *string
}

// NewStatic builds a Static provider. Empty strings become nil fields.
func NewStatic(actorID, token string) *Static {
	s := &Static{}
	if actorID != "" {
		s.actorID = &actorID
	}
	if token != "" {
		s.token = &token
	}
	return s
}

func (s *Static) Identity() Identity {
	return Identity{ActorID: s.actorID, Token: s.token}
}
