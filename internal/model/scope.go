package model

// Scope carries the request-scoped identity every operation is bounded by.
// All reads and writes are owner-scoped; there is no cross-owner state.
type Scope struct {
	OwnerID  string
	Username string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
