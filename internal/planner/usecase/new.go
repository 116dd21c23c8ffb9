package usecase

import (
	"time"

	taskRepo "smarttaskai/internal/task/repository"
	"smarttaskai/pkg/gcalendar"
	pkgLog "smarttaskai/pkg/log"
)

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	tasks taskRepo.Repository

	// calendar is nil when no credentials are configured; sync is then
	// rejected with ErrSyncDisabled.
	calendar   *gcalendar.Client
	calendarID string

	now func() time.Time
}

// New creates a new planner UseCase. calendar may be nil.
func New(l pkgLog.Logger, tasks taskRepo.Repository, calendar *gcalendar.Client, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		tasks:      tasks,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}

// SetNow overrides the clock. Intended for tests.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
