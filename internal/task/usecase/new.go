package usecase

import (
	"time"

	"smarttaskai/internal/task/repository"
	pkgLog "smarttaskai/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new task UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}

// SetNow overrides the clock. Intended for tests.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
