package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

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
	locks     *ownerLocks
	now       func() time.Time
	newID     func() string
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, parser *timetext.Parser, schedulerUC scheduler.UseCase) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		scheduler: schedulerUC,
		locks:     newOwnerLocks(),
		now:       time.Now,
		newID:     shortID,
	}
}

// shortID returns an opaque 8-character record code.
func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
