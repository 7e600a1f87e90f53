package reporting

import (
	"testing"

	"github.com/alexanderramin/partes/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveScope(t *testing.T) {
	tests := []struct {
		name      string
		principal domain.Principal
		requested string
		want      Scope
	}{
		{
			name:      "plain employee sees own records",
			principal: domain.Principal{EmployeeID: "emp-1"},
			want:      Scope{Kind: ScopeEmployee, EmployeeID: "emp-1"},
		},
		{
			name:      "plain employee cannot widen to another employee",
			principal: domain.Principal{EmployeeID: "emp-1"},
			requested: "emp-2",
			want:      Scope{Kind: ScopeEmployee, EmployeeID: "emp-1"},
		},
		{
			name:      "supervisor sees all",
			principal: domain.Principal{EmployeeID: "sup-1", Supervisor: true},
			want:      Scope{Kind: ScopeAll},
		},
		{
			name:      "supervisor narrows to one employee",
			principal: domain.Principal{EmployeeID: "sup-1", Supervisor: true},
			requested: "emp-2",
			want:      Scope{Kind: ScopeEmployee, EmployeeID: "emp-2"},
		},
		{
			name:      "client pinned to own client id",
			principal: domain.Principal{IsClient: true, ClientID: "cli-1"},
			want:      Scope{Kind: ScopeClient, ClientID: "cli-1"},
		},
		{
			name:      "client ignores employee narrowing",
			principal: domain.Principal{IsClient: true, ClientID: "cli-1"},
			requested: "emp-2",
			want:      Scope{Kind: ScopeClient, ClientID: "cli-1"},
		},
		{
			name:      "client without backing client sees nothing",
			principal: domain.Principal{IsClient: true},
			want:      Scope{Kind: ScopeNone},
		},
		{
			name:      "empty principal sees nothing",
			principal: domain.Principal{},
			want:      Scope{Kind: ScopeNone},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveScope(tc.principal, tc.requested)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScope_Empty(t *testing.T) {
	assert.True(t, Scope{Kind: ScopeNone}.Empty())
	assert.False(t, Scope{Kind: ScopeAll}.Empty())
	assert.False(t, Scope{Kind: ScopeEmployee, EmployeeID: "e"}.Empty())
}
