package reporting

import "github.com/alexanderramin/partes/internal/domain"

// ScopeKind discriminates the visibility variants.
type ScopeKind string

const (
	// ScopeAll sees every employee's records (supervisors only).
	ScopeAll ScopeKind = "all"
	// ScopeEmployee sees a single employee's records.
	ScopeEmployee ScopeKind = "employee"
	// ScopeClient sees a single client's records (client logins).
	ScopeClient ScopeKind = "client"
	// ScopeNone sees nothing. A principal with no backing record resolves
	// here rather than to an error.
	ScopeNone ScopeKind = "none"
)

// Scope is the server-enforced subset of task records a principal may see.
// Every query path consumes one resolved Scope instead of re-deriving
// visibility from the principal, so no endpoint can forget a check.
type Scope struct {
	Kind       ScopeKind
	EmployeeID string
	ClientID   string
}

// ResolveScope derives the visibility scope for a principal.
//
// Client logins are pinned to their own client id; any requested employee
// filter is ignored, since a client must not pivot onto employee data.
// Supervisors see everything, or may narrow to any single employee.
// Plain employees always see their own records only, regardless of what
// the request asked for: scope is enforced here, never trusted from input.
func ResolveScope(p domain.Principal, requestedEmployeeID string) Scope {
	if p.IsClient {
		if p.ClientID == "" {
			return Scope{Kind: ScopeNone}
		}
		return Scope{Kind: ScopeClient, ClientID: p.ClientID}
	}
	if p.EmployeeID == "" {
		return Scope{Kind: ScopeNone}
	}
	if p.Supervisor {
		if requestedEmployeeID != "" {
			return Scope{Kind: ScopeEmployee, EmployeeID: requestedEmployeeID}
		}
		return Scope{Kind: ScopeAll}
	}
	return Scope{Kind: ScopeEmployee, EmployeeID: p.EmployeeID}
}

// Empty reports whether the scope can never match any record.
func (s Scope) Empty() bool {
	return s.Kind == ScopeNone
}
