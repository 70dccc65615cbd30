package entities

// Identity is the verified actor extracted from a bearer token.
type Identity struct {
	UserID string
	RoleID string
}

// Decision is the outcome of a policy check. AllowedAsAdmin is distinct
// from Allowed so call sites can permit elevated changes (for example a
// role change during a user update) without re-resolving the role.
type Decision int

const (
	DecisionDenied Decision = iota
	DecisionAllowed
	DecisionAllowedAsAdmin
)

// Granted reports whether the check passed at all.
func (d Decision) Granted() bool {
	return d == DecisionAllowed || d == DecisionAllowedAsAdmin
}

// Admin reports whether the check passed with elevated rights.
func (d Decision) Admin() bool {
	return d == DecisionAllowedAsAdmin
}

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionAllowedAsAdmin:
		return "allowed_as_admin"
	default:
		return "denied"
	}
}
