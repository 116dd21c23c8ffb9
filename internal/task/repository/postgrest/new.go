package postgrest

import (
	"fmt"

	"smarttaskai/internal/task/repository"
	"smarttaskai/pkg/log"
	"smarttaskai/pkg/postgrest"
)

// tasksTable is the remote relational table mirroring the Task entity.
const tasksTable = "tasks"

type implRepository struct {
	client *postgrest.Client
	l      log.Logger
}

// New creates a new PostgREST-backed Repository for the task domain.
func New(client *postgrest.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("task/repository/postgrest: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgrest.%s", method)
}
