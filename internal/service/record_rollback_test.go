package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_Update_RollsBackOnWriteFailure(t *testing.T) {
	env := setupServiceEnv(t)
	ctx := context.Background()

	rec := env.addRecord(t, env.ana.ID, env.acme.ID, testutil.WithMinutes(60), testutil.WithNote("original note"))

	boom := errors.New("disk full")
	failing := &testutil.FailOnNthExecUoW{DB: env.database, FailOn: 1, Err: boom}
	svc := NewRecordService(env.records, env.employees, env.clients, env.taskTypes, failing)

	_, err := svc.Update(ctx, env.asEmployee(env.ana), app.UpdateRecordRequest{
		ID:         rec.ID,
		ClientID:   env.acme.ID,
		TaskTypeID: env.support.ID,
		Date:       rec.Date,
		Minutes:    120,
		Note:       "changed note",
	})
	require.ErrorIs(t, err, boom)

	fetched, err := env.records.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, fetched.Minutes, "a failed update must leave the record untouched")
	assert.Equal(t, "original note", fetched.Note)
}
