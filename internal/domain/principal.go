package domain

// Principal is the authenticated caller's identity as supplied by the
// identity collaborator. It arrives per request and is never persisted.
// Engine calls take an explicit Principal instead of reading any ambient
// current-user state, so synthetic principals work in tests.
type Principal struct {
	// EmployeeID is the backing employee record, empty for client logins
	// and for principals with no backing record at all.
	EmployeeID string
	Supervisor bool

	// IsClient marks an external client login pinned to ClientID.
	IsClient bool
	ClientID string
}
