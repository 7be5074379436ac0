package mktree

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mktree/pkg/mktree/filesystem"
)

// Default permissions for created entries.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Materializer executes plans against a filesystem collaborator.
// Directories that already exist are left untouched; files are written
// empty with truncate semantics, so re-running over an existing tree
// destroys prior file contents. That is the defined behavior, not a
// bug. Nothing is rolled back on failure.
type Materializer struct {
	fsys   filesystem.FileSystem
	logger zerolog.Logger
}

// NewMaterializer creates a materializer over the given filesystem.
func NewMaterializer(fsys filesystem.FileSystem, logger zerolog.Logger) *Materializer {
	return &Materializer{fsys: fsys, logger: logger}
}

// Materialize lowers the tree to a plan, validates it, and executes
// it. Paths are created relative to the filesystem's root.
func (m *Materializer) Materialize(ctx context.Context, tree Tree) error {
	plan := PlanTree(tree)
	if err := plan.Resolve(); err != nil {
		return err
	}
	return m.Run(ctx, plan)
}

// Run executes a resolved plan in order. The first failing operation
// aborts the run; entries created before it stay in place. Context
// cancellation is checked between operations.
func (m *Materializer) Run(ctx context.Context, plan *Plan) error {
	if !plan.resolved {
		return fmt.Errorf("plan has not been resolved")
	}
	for _, op := range plan.Operations() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.apply(op); err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) apply(op Operation) error {
	switch op.Kind {
	case OpCreateDir:
		if filesystem.Exists(m.fsys, op.Path) {
			m.logger.Debug().Str("path", op.Path).Msg("directory exists, skipping")
			return nil
		}
		if err := m.fsys.MkdirAll(op.Path, DirPerm); err != nil {
			return fmt.Errorf("create directory %q: %w", op.Path, err)
		}
		m.logger.Debug().Str("path", op.Path).Msg("created directory")
		return nil
	case OpCreateFile:
		if err := m.fsys.WriteFile(op.Path, []byte{}, FilePerm); err != nil {
			return fmt.Errorf("create file %q: %w", op.Path, err)
		}
		m.logger.Debug().Str("path", op.Path).Msg("created file")
		return nil
	default:
		return fmt.Errorf("unknown operation kind %d", op.Kind)
	}
}
