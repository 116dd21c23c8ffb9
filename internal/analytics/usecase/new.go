package usecase

import (
	"time"

	taskRepo "smarttaskai/internal/task/repository"
	pkgLog "smarttaskai/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	tasks taskRepo.Repository
	now   func() time.Time
}

// New creates a new analytics UseCase reading from the task store.
func New(l pkgLog.Logger, tasks taskRepo.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		tasks: tasks,
		now:   time.Now,
	}
}

// SetNow overrides the clock. Intended for tests.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
