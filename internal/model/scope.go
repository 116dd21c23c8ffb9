package model

// Scope identifies the authenticated user a request acts on behalf of.
// Every task operation is scoped to exactly one user; an empty Scope is
// rejected before any store call is made.
type Scope struct {
	UserID      string
	Email       string
	AccessToken string
}

// IsZero reports whether no user is authenticated.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
