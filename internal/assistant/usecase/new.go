package usecase

import (
	"time"

	"smarttaskai/internal/assistant"
	"smarttaskai/internal/task"
	taskRepo "smarttaskai/internal/task/repository"
	pkgLog "smarttaskai/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	gen        assistant.Generator
	classifier assistant.Classifier
	tasks      taskRepo.Repository
	taskUC     task.UseCase
	now        func() time.Time
}

// New creates a new assistant UseCase. The task use case is reused for
// persistence so created tasks follow the same validation path as
// form-created ones.
func New(l pkgLog.Logger, gen assistant.Generator, tasks taskRepo.Repository, taskUC task.UseCase) *implUseCase {
	return &implUseCase{
		l:          l,
		gen:        gen,
		classifier: assistant.NewKeywordClassifier(),
		tasks:      tasks,
		taskUC:     taskUC,
		now:        time.Now,
	}
}

// SetClassifier overrides the default keyword classifier.
func (uc *implUseCase) SetClassifier(c assistant.Classifier) {
	uc.classifier = c
}

// SetNow overrides the clock. Intended for tests.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
