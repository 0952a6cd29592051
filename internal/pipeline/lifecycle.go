package pipeline

import (
	"fmt"
	"os"

	"videolow/internal/plan"
	"videolow/internal/services"
)

// Lifecycle tracks which planned paths are intermediate and deletes them once
// their consuming stage has succeeded. Final artifacts are never deleted;
// asking for one is an internal invariant violation, not a recoverable
// condition.
type Lifecycle struct {
	roles map[string]plan.Role
}

// NewLifecycle builds a lifecycle manager for one run's artifact set.
func NewLifecycle(set plan.Set) *Lifecycle {
	roles := make(map[string]plan.Role)
	for _, artifact := range set.Ordered() {
		roles[artifact.Path] = artifact.Role
	}
	return &Lifecycle{roles: roles}
}

// MarkConsumed deletes path if it is a planned intermediate. Deletion failure
// surfaces as a cleanup error so the run aborts instead of completing with a
// dangling intermediate.
func (l *Lifecycle) MarkConsumed(path string) error {
	role, planned := l.roles[path]
	if !planned {
		return services.Wrap(services.ErrCleanup, "cleanup", "mark consumed", fmt.Sprintf("path %s was never planned", path), nil)
	}
	if role == plan.RoleFinal {
		return services.Wrap(services.ErrCleanup, "cleanup", "mark consumed", fmt.Sprintf("invariant violation: refusing to delete final artifact %s", path), nil)
	}
	if err := os.Remove(path); err != nil {
		return services.Wrap(services.ErrCleanup, "cleanup", "remove intermediate", path, err)
	}
	return nil
}
