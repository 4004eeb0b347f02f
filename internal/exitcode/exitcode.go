// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Best-effort page creation
	// failures also exit Success; they are reported on stderr only.
	Success = 0

	// UserError indicates a user error (bad args, project not found).
	UserError = 1

	// AuthError indicates missing or rejected credentials.
	AuthError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3
)
