package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/reporting"
	"github.com/alexanderramin/partes/internal/repository"
)

const defaultTopN = 5

type reportService struct {
	records  repository.TaskRecordRepo
	observer UseCaseObserver
}

// NewReportService wires the read path over the task record store.
func NewReportService(records repository.TaskRecordRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		records:  records,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) List(ctx context.Context, p domain.Principal, req app.DetailRequest) (*app.DetailResponse, error) {
	return s.listing(ctx, "report_list", p, req, reporting.PersonalSortKeys)
}

func (s *reportService) Detail(ctx context.Context, p domain.Principal, req app.DetailRequest) (*app.DetailResponse, error) {
	return s.listing(ctx, "report_detail", p, req, reporting.DetailSortKeys)
}

func (s *reportService) listing(ctx context.Context, name string, p domain.Principal, req app.DetailRequest, allowed []reporting.SortKey) (*app.DetailResponse, error) {
	started := time.Now()

	filters, fellBack, err := reporting.Filters{
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		ClientID:   req.ClientID,
		TaskTypeID: req.TaskTypeID,
		EmployeeID: req.EmployeeID,
		Search:     req.Search,
		SortKey:    req.SortKey,
		SortDir:    req.SortDir,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}.Normalize(allowed)
	if err != nil {
		err = mapPeriodError(err)
		s.observe(ctx, name, started, err, nil)
		return nil, err
	}
	if fellBack {
		s.observe(ctx, name, started, nil, map[string]any{"sort_fallback": string(req.SortKey)})
	}

	scope := reporting.ResolveScope(p, req.EmployeeID)
	if scope.Empty() {
		return &app.DetailResponse{
			Rows:       []app.DetailRow{},
			Pagination: reporting.NewPagination(filters.Page, filters.PageSize, 0),
		}, nil
	}

	totals, err := s.records.TotalsFor(ctx, scope, filters)
	if err != nil {
		s.observe(ctx, name, started, err, nil)
		return nil, err
	}

	rows, err := s.records.ListPage(ctx, scope, filters)
	if err != nil {
		s.observe(ctx, name, started, err, nil)
		return nil, err
	}

	withEmployee := scope.Kind == reporting.ScopeAll || p.IsClient
	out := make([]app.DetailRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, projectDetailRow(r, withEmployee))
	}

	resp := &app.DetailResponse{
		Rows:       out,
		Pagination: reporting.NewPagination(filters.Page, filters.PageSize, totals.Count),
		TotalHours: domain.HoursDecimal(totals.Minutes),
	}
	s.observe(ctx, name, started, nil, map[string]any{"rows": len(out), "total": totals.Count})
	return resp, nil
}

func (s *reportService) Grouped(ctx context.Context, p domain.Principal, req app.GroupedRequest) (*app.GroupedResponse, error) {
	started := time.Now()

	filters, _, err := reporting.Filters{DateFrom: req.DateFrom, DateTo: req.DateTo}.Normalize(nil)
	if err != nil {
		err = mapPeriodError(err)
		s.observe(ctx, "report_grouped", started, err, nil)
		return nil, err
	}

	dim := req.Dimension
	if dim == "" {
		dim = reporting.GroupByClient
	}

	scope := reporting.ResolveScope(p, "")
	if scope.Empty() {
		return &app.GroupedResponse{Groups: []reporting.Group{}}, nil
	}

	totals, err := s.records.GroupTotals(ctx, scope, filters, dim)
	if err != nil {
		s.observe(ctx, "report_grouped", started, err, nil)
		return nil, err
	}

	groups, grandHours, grandTasks := reporting.BuildGroups(totals)
	s.observe(ctx, "report_grouped", started, nil, map[string]any{"dimension": string(dim), "groups": len(groups)})
	return &app.GroupedResponse{
		Groups:          groups,
		GrandTotalHours: grandHours,
		GrandTotalTasks: grandTasks,
	}, nil
}

func (s *reportService) Dashboard(ctx context.Context, p domain.Principal, req app.DashboardRequest) (*app.DashboardResponse, error) {
	started := time.Now()

	filters, _, err := reporting.Filters{DateFrom: req.DateFrom, DateTo: req.DateTo}.Normalize(nil)
	if err != nil {
		err = mapPeriodError(err)
		s.observe(ctx, "dashboard", started, err, nil)
		return nil, err
	}

	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	scope := reporting.ResolveScope(p, "")
	resp := &app.DashboardResponse{
		TopClients:       []reporting.Group{},
		TopEmployees:     []reporting.Group{},
		TypeDistribution: []reporting.Group{},
	}
	if scope.Empty() {
		return resp, nil
	}

	totals, err := s.records.TotalsFor(ctx, scope, filters)
	if err != nil {
		s.observe(ctx, "dashboard", started, err, nil)
		return nil, err
	}
	resp.TotalHours = domain.HoursDecimal(totals.Minutes)
	resp.TaskCount = totals.Count

	days, err := s.records.DistinctDays(ctx, scope, filters)
	if err != nil {
		s.observe(ctx, "dashboard", started, err, nil)
		return nil, err
	}
	if days > 0 {
		resp.AvgHoursPerDay = math.Round(float64(totals.Minutes)/60/float64(days)*100) / 100
	}

	clientTotals, err := s.records.GroupTotals(ctx, scope, filters, reporting.GroupByClient)
	if err != nil {
		s.observe(ctx, "dashboard", started, err, nil)
		return nil, err
	}
	clientGroups, _, _ := reporting.BuildGroups(clientTotals)
	resp.TopClients = topOf(clientGroups, topN)

	if p.Supervisor && !p.IsClient {
		employeeTotals, err := s.records.GroupTotals(ctx, scope, filters, reporting.GroupByEmployee)
		if err != nil {
			s.observe(ctx, "dashboard", started, err, nil)
			return nil, err
		}
		employeeGroups, _, _ := reporting.BuildGroups(employeeTotals)
		resp.TopEmployees = topOf(employeeGroups, topN)
	}

	if p.IsClient {
		typeTotals, err := s.records.GroupTotals(ctx, scope, filters, reporting.GroupByTaskType)
		if err != nil {
			s.observe(ctx, "dashboard", started, err, nil)
			return nil, err
		}
		resp.TypeDistribution, _, _ = reporting.BuildGroups(typeTotals)
	}

	s.observe(ctx, "dashboard", started, nil, map[string]any{"tasks": totals.Count, "days": days})
	return resp, nil
}

func (s *reportService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

// projectDetailRow maps a joined store row to its display shape. Employee
// identity is included only for callers entitled to see other employees.
func projectDetailRow(r repository.DetailRow, withEmployee bool) app.DetailRow {
	row := app.DetailRow{
		ID:         r.Record.ID,
		Date:       r.Record.Date.Format("2006-01-02"),
		ClientName: r.ClientName,
		TaskType:   r.TaskTypeDesc,
		Hours:      r.Record.Hours(),
		HoursClock: domain.HoursClock(r.Record.Minutes),
		NoCharge:   r.Record.NoCharge,
		OnSite:     r.Record.OnSite,
		Closed:     r.Record.Closed,
		Note:       r.Record.Note,
	}
	if withEmployee {
		row.EmployeeCode = r.EmployeeCode
		row.EmployeeName = r.EmployeeName
	}
	return row
}

func topOf(groups []reporting.Group, n int) []reporting.Group {
	if len(groups) > n {
		return groups[:n]
	}
	return groups
}

func mapPeriodError(err error) error {
	if errors.Is(err, reporting.ErrInvalidPeriod) {
		return &app.ReportError{
			Code:    app.ReportErrInvalidPeriod,
			Message: "period start date must not be after end date",
		}
	}
	return err
}
