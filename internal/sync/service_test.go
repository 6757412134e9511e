package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/gcalendar"
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

type fakeSource struct {
	events  []gcalendar.Event
	err     error
	lastReq gcalendar.ListEventsRequest
}

func (f *fakeSource) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.lastReq = req
	return f.events, f.err
}

type fakeEventRepo struct {
	existing map[string]model.ScheduledEvent // keyed by provider id
	upserts  []repository.CreateEventOptions
	err      error
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduledEvent, error) {
	return model.ScheduledEvent{}, nil
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduledEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) UpsertProviderEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduledEvent, bool, error) {
	if f.err != nil {
		return model.ScheduledEvent{}, false, f.err
	}
	f.upserts = append(f.upserts, opt)
	_, exists := f.existing[opt.ProviderID]
	if f.existing == nil {
		f.existing = map[string]model.ScheduledEvent{}
	}
	ev := model.ScheduledEvent{
		ID:         opt.ID,
		OwnerID:    opt.OwnerID,
		Title:      opt.Title,
		Start:      opt.Start,
		End:        opt.End,
		ProviderID: opt.ProviderID,
		Channel:    opt.Channel,
	}
	f.existing[opt.ProviderID] = ev
	return ev, !exists, nil
}

func newTestService(source *fakeSource, repo *fakeEventRepo, now time.Time) *implService {
	seq := 0
	return &implService{
		l:          &mockLogger{},
		repo:       repo,
		calendar:   source,
		calendarID: "primary",
		now:        func() time.Time { return now },
		newID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}
}

func TestPullCalendar(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	sc := model.Scope{OwnerID: "owner-1"}

	t.Run("upserts fetched events with provider id", func(t *testing.T) {
		source := &fakeSource{events: []gcalendar.Event{
			{
				ID:        "gcal-1",
				Summary:   "sprint review",
				StartTime: now.Add(24 * time.Hour),
				EndTime:   now.Add(25 * time.Hour),
				Location:  "Room 4",
			},
			{
				ID:        "gcal-2",
				Summary:   "dentist",
				StartTime: now.Add(48 * time.Hour),
				EndTime:   now.Add(49 * time.Hour),
			},
		}}
		repo := &fakeEventRepo{}
		svc := newTestService(source, repo, now)

		out, err := svc.PullCalendar(context.Background(), sc, PullInput{})
		if err != nil {
			t.Fatalf("PullCalendar: %v", err)
		}
		if out.Fetched != 2 || out.Created != 2 || out.Updated != 0 {
			t.Errorf("got fetched=%d created=%d updated=%d", out.Fetched, out.Created, out.Updated)
		}
		if len(repo.upserts) != 2 {
			t.Fatalf("expected 2 upserts, got %d", len(repo.upserts))
		}
		first := repo.upserts[0]
		if first.ProviderID != "gcal-1" || first.OwnerID != "owner-1" || first.Channel != model.ChannelSync {
			t.Errorf("unexpected upsert options: %+v", first)
		}
		if first.Location != "Room 4" {
			t.Errorf("expected location carried over, got %q", first.Location)
		}
	})

	t.Run("second pull counts updates not creates", func(t *testing.T) {
		source := &fakeSource{events: []gcalendar.Event{
			{ID: "gcal-1", Summary: "standup", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		}}
		repo := &fakeEventRepo{}
		svc := newTestService(source, repo, now)

		if _, err := svc.PullCalendar(context.Background(), sc, PullInput{}); err != nil {
			t.Fatalf("first pull: %v", err)
		}
		out, err := svc.PullCalendar(context.Background(), sc, PullInput{})
		if err != nil {
			t.Fatalf("second pull: %v", err)
		}
		if out.Created != 0 || out.Updated != 1 {
			t.Errorf("got created=%d updated=%d, want 0/1", out.Created, out.Updated)
		}
	})

	t.Run("skips events without a usable interval", func(t *testing.T) {
		source := &fakeSource{events: []gcalendar.Event{
			{ID: "gcal-1", Summary: "no times"},
			{ID: "", Summary: "no id", StartTime: now, EndTime: now.Add(time.Hour)},
		}}
		repo := &fakeEventRepo{}
		svc := newTestService(source, repo, now)

		out, err := svc.PullCalendar(context.Background(), sc, PullInput{})
		if err != nil {
			t.Fatalf("PullCalendar: %v", err)
		}
		if out.Fetched != 0 || len(repo.upserts) != 0 {
			t.Errorf("expected nothing upserted, got %+v", out)
		}
	})

	t.Run("horizon defaults to 30 days", func(t *testing.T) {
		source := &fakeSource{}
		svc := newTestService(source, &fakeEventRepo{}, now)

		if _, err := svc.PullCalendar(context.Background(), sc, PullInput{}); err != nil {
			t.Fatalf("PullCalendar: %v", err)
		}
		want := now.AddDate(0, 0, 30)
		if !source.lastReq.TimeMax.Equal(want) {
			t.Errorf("TimeMax = %v, want %v", source.lastReq.TimeMax, want)
		}
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		source := &fakeSource{err: errors.New("quota exceeded")}
		svc := newTestService(source, &fakeEventRepo{}, now)

		if _, err := svc.PullCalendar(context.Background(), sc, PullInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}
