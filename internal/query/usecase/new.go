package usecase

import (
	"time"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/timetext"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	parser    *timetext.Parser
	scheduler scheduler.UseCase
	now       func() time.Time
}

// New creates a new query UseCase implementation.
func New(l log.Logger, repo repository.Repository, parser *timetext.Parser, schedulerUC scheduler.UseCase) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		scheduler: schedulerUC,
		now:       time.Now,
	}
}
