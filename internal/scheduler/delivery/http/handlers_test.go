package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	schedulerHTTP "smart-scheduler/internal/scheduler/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	lastConflictsInput scheduler.CheckConflictsInput
}

func (m *mockUseCase) CheckConflicts(ctx context.Context, sc model.Scope, input scheduler.CheckConflictsInput) (scheduler.CheckConflictsOutput, error) {
	m.lastConflictsInput = input
	return scheduler.CheckConflictsOutput{}, nil
}

func (m *mockUseCase) FindSlots(ctx context.Context, sc model.Scope, input scheduler.FindSlotsInput) (scheduler.FindSlotsOutput, error) {
	return scheduler.FindSlotsOutput{}, nil
}

func (m *mockUseCase) SuggestReschedule(ctx context.Context, sc model.Scope, input scheduler.RescheduleInput) (scheduler.RescheduleOutput, error) {
	return scheduler.RescheduleOutput{}, nil
}

func (m *mockUseCase) Overview(ctx context.Context, sc model.Scope, input scheduler.OverviewInput) (scheduler.OverviewOutput, error) {
	return scheduler.OverviewOutput{}, nil
}

func newEngine(uc scheduler.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	schedulerHTTP.RegisterRoutes(api, schedulerHTTP.New(&mockLogger{}, uc), middleware.New(&mockLogger{}, 60))
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.OwnerHeader, "owner-1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestConflictsQueryValidation(t *testing.T) {
	t.Run("malformed time is rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newEngine(uc)

		w := get(engine, "/api/v1/schedule/conflicts?date=2024-01-16&time=garbage")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("out of range time is rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newEngine(uc)

		w := get(engine, "/api/v1/schedule/conflicts?date=2024-01-16&time=25:00")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unpadded time reaches the engine normalized", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newEngine(uc)

		w := get(engine, "/api/v1/schedule/conflicts?date=2024-01-16&time=9:00&duration=60")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got := uc.lastConflictsInput.TimeOfDay; got != "09:00" {
			t.Errorf("TimeOfDay = %q, want 09:00", got)
		}
		if uc.lastConflictsInput.Date == nil || uc.lastConflictsInput.Date.Day() != 16 {
			t.Errorf("Date = %v, want the 16th", uc.lastConflictsInput.Date)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		engine := newEngine(uc)

		w := get(engine, "/api/v1/schedule/conflicts?date=16-01-2024&time=10:00")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
