package sync

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/gcalendar"
	pkgLog "smart-scheduler/pkg/log"
)

// calendarSource is the slice of the provider client the service needs.
type calendarSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implService struct {
	l          pkgLog.Logger
	repo       repository.EventRepository
	calendar   calendarSource
	calendarID string
	now        func() time.Time
	newID      func() string
}

// New creates the calendar pull service.
func New(l pkgLog.Logger, repo repository.EventRepository, calendar *gcalendar.Client, calendarID string) Service {
	return &implService{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
		newID:      shortID,
	}
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
