package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *serviceTestEnv) catalogService() CatalogService {
	return NewCatalogService(env.employees, env.clients, env.taskTypes)
}

func TestCatalogService_Clients(t *testing.T) {
	env := setupServiceEnv(t)
	ctx := context.Background()

	gone := testutil.NewTestClient("Gone", testutil.WithClientDisabled())
	require.NoError(t, env.clients.Create(ctx, gone))

	list, err := env.catalogService().Clients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, c := range list {
		assert.True(t, c.Enabled())
	}
}

func TestCatalogService_TaskTypes(t *testing.T) {
	env := setupServiceEnv(t)
	ctx := context.Background()

	custom := testutil.NewTestTaskType("Custom integration")
	require.NoError(t, env.taskTypes.Create(ctx, custom))

	list, err := env.catalogService().TaskTypes(ctx, env.acme.ID)
	require.NoError(t, err)
	require.Len(t, list, 1, "unassigned non-generic types are hidden")
	assert.Equal(t, env.support.ID, list[0].ID)

	require.NoError(t, env.taskTypes.AssignToClient(ctx, env.acme.ID, custom.ID))
	list, err = env.catalogService().TaskTypes(ctx, env.acme.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCatalogService_Employees_SupervisorOnly(t *testing.T) {
	env := setupServiceEnv(t)
	svc := env.catalogService()
	ctx := context.Background()

	_, err := svc.Employees(ctx, env.asEmployee(env.ana))
	var re *app.RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, app.RecordErrForbidden, re.Code)

	_, err = svc.Employees(ctx, env.asClient(env.acme))
	require.ErrorAs(t, err, &re)

	_, err = svc.Employees(ctx, domain.Principal{EmployeeID: "ghost"})
	require.ErrorAs(t, err, &re)

	list, err := svc.Employees(ctx, env.asEmployee(env.sofia))
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
