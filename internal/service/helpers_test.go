package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/repository"
	"github.com/alexanderramin/partes/internal/testutil"
	"github.com/stretchr/testify/require"
)

// serviceTestEnv holds the shared scaffolding for service-level tests:
// repos backed by one in-memory database plus a baseline catalog.
type serviceTestEnv struct {
	database  *sql.DB
	records   *repository.SQLiteTaskRecordRepo
	employees *repository.SQLiteEmployeeRepo
	clients   *repository.SQLiteClientRepo
	taskTypes *repository.SQLiteTaskTypeRepo
	uow       db.UnitOfWork

	ana     *domain.Employee // plain employee
	bruno   *domain.Employee // plain employee
	sofia   *domain.Employee // supervisor
	acme    *domain.Client
	bolt    *domain.Client
	support *domain.TaskType // generic
}

func setupServiceEnv(t *testing.T) *serviceTestEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	env := &serviceTestEnv{
		database:  database,
		records:   repository.NewSQLiteTaskRecordRepo(database),
		employees: repository.NewSQLiteEmployeeRepo(database),
		clients:   repository.NewSQLiteClientRepo(database),
		taskTypes: repository.NewSQLiteTaskTypeRepo(database),
		uow:       testutil.NewTestUoW(database),
		ana:       testutil.NewTestEmployee("Ana"),
		bruno:     testutil.NewTestEmployee("Bruno"),
		sofia:     testutil.NewTestEmployee("Sofia", testutil.WithSupervisor()),
		acme:      testutil.NewTestClient("Acme"),
		bolt:      testutil.NewTestClient("Bolt"),
		support:   testutil.NewTestTaskType("Support", testutil.WithGeneric()),
	}

	require.NoError(t, env.employees.Create(ctx, env.ana))
	require.NoError(t, env.employees.Create(ctx, env.bruno))
	require.NoError(t, env.employees.Create(ctx, env.sofia))
	require.NoError(t, env.clients.Create(ctx, env.acme))
	require.NoError(t, env.clients.Create(ctx, env.bolt))
	require.NoError(t, env.taskTypes.Create(ctx, env.support))

	return env
}

func (env *serviceTestEnv) reportService(observers ...UseCaseObserver) ReportService {
	return NewReportService(env.records, observers...)
}

func (env *serviceTestEnv) recordService() RecordService {
	return NewRecordService(env.records, env.employees, env.clients, env.taskTypes, env.uow)
}

func (env *serviceTestEnv) addRecord(t *testing.T, employeeID, clientID string, opts ...testutil.RecordOption) *domain.TaskRecord {
	t.Helper()
	rec := testutil.NewTestRecord(employeeID, clientID, env.support.ID, opts...)
	require.NoError(t, env.records.Create(context.Background(), rec))
	return rec
}

func (env *serviceTestEnv) asEmployee(e *domain.Employee) domain.Principal {
	return domain.Principal{EmployeeID: e.ID, Supervisor: e.Supervisor}
}

func (env *serviceTestEnv) asClient(c *domain.Client) domain.Principal {
	return domain.Principal{IsClient: true, ClientID: c.ID}
}

// capturingObserver records every use-case event it sees.
type capturingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *capturingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *capturingObserver) all() []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]UseCaseEvent(nil), o.events...)
}

func march(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func marchPtr(day int) *time.Time {
	t := march(day)
	return &t
}
