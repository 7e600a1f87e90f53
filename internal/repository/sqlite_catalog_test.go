package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/partes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepo_GetByCode(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEmployeeRepo(database)
	ctx := context.Background()

	emp := testutil.NewTestEmployee("Ana", testutil.WithEmployeeCode("JPEREZ"), testutil.WithSupervisor())
	require.NoError(t, repo.Create(ctx, emp))

	fetched, err := repo.GetByCode(ctx, "JPEREZ")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, fetched.ID)
	assert.True(t, fetched.Supervisor)

	_, err = repo.GetByCode(ctx, "NOBODY")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeRepo_ListEnabled(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEmployeeRepo(database)
	ctx := context.Background()

	active := testutil.NewTestEmployee("Bea")
	disabled := testutil.NewTestEmployee("Carl", testutil.WithEmployeeDisabled())
	inactive := testutil.NewTestEmployee("Dana", testutil.WithEmployeeInactive())
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, disabled))
	require.NoError(t, repo.Create(ctx, inactive))

	list, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
}

func TestClientRepo_ListEnabledOrderedByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(database)
	ctx := context.Background()

	zeta := testutil.NewTestClient("Zeta")
	acme := testutil.NewTestClient("Acme")
	gone := testutil.NewTestClient("Gone", testutil.WithClientDisabled())
	require.NoError(t, repo.Create(ctx, zeta))
	require.NoError(t, repo.Create(ctx, acme))
	require.NoError(t, repo.Create(ctx, gone))

	list, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)
}

func TestTaskTypeRepo_ListAvailableForClient(t *testing.T) {
	database := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(database)
	taskTypes := NewSQLiteTaskTypeRepo(database)
	ctx := context.Background()

	client := testutil.NewTestClient("Acme")
	require.NoError(t, clients.Create(ctx, client))

	generic := testutil.NewTestTaskType("General support", testutil.WithGeneric())
	assigned := testutil.NewTestTaskType("Custom integration")
	unassigned := testutil.NewTestTaskType("Other project work")
	disabled := testutil.NewTestTaskType("Legacy", testutil.WithGeneric(), testutil.WithTaskTypeDisabled())
	require.NoError(t, taskTypes.Create(ctx, generic))
	require.NoError(t, taskTypes.Create(ctx, assigned))
	require.NoError(t, taskTypes.Create(ctx, unassigned))
	require.NoError(t, taskTypes.Create(ctx, disabled))
	require.NoError(t, taskTypes.AssignToClient(ctx, client.ID, assigned.ID))

	list, err := taskTypes.ListAvailableForClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.Contains(t, ids, generic.ID, "generic types are available everywhere")
	assert.Contains(t, ids, assigned.ID, "assigned types are available to their client")
	assert.NotContains(t, ids, unassigned.ID)
	assert.NotContains(t, ids, disabled.ID)
}

func TestTaskTypeRepo_IsAssignedToClient(t *testing.T) {
	database := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(database)
	taskTypes := NewSQLiteTaskTypeRepo(database)
	ctx := context.Background()

	client := testutil.NewTestClient("Acme")
	require.NoError(t, clients.Create(ctx, client))

	tt := testutil.NewTestTaskType("Custom integration")
	require.NoError(t, taskTypes.Create(ctx, tt))

	ok, err := taskTypes.IsAssignedToClient(ctx, client.ID, tt.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, taskTypes.AssignToClient(ctx, client.ID, tt.ID))
	ok, err = taskTypes.IsAssignedToClient(ctx, client.ID, tt.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
