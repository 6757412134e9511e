package usecase

import (
	"time"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/timetext"
)

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	parser      *timetext.Parser
	horizonDays int
	now         func() time.Time
}

// New creates a new scheduler UseCase implementation. horizonDays bounds
// free-slot search when a request gives no horizon of its own; values <= 0
// fall back to scheduler.DefaultHorizonDays.
func New(l log.Logger, repo repository.Repository, parser *timetext.Parser, horizonDays int) *implUseCase {
	if horizonDays <= 0 {
		horizonDays = scheduler.DefaultHorizonDays
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		parser:      parser,
		horizonDays: horizonDays,
		now:         time.Now,
	}
}
