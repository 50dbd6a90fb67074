package scripting

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/flyweight/internal/game/character"
)

// Runner executes Lua scenario scripts against a character.Registry.
// Each run gets a fresh sandboxed VM; the registry is shared across runs.
type Runner struct {
	registry  *character.Registry
	narrator  character.Narrator
	logger    *zap.Logger
	instLimit int
}

// NewRunner creates a Runner.
//
// Precondition: registry, narrator and logger must be non-nil; instLimit >= 0
// (0 uses DefaultInstructionLimit).
func NewRunner(registry *character.Registry, narrator character.Narrator, logger *zap.Logger, instLimit int) *Runner {
	return &Runner{
		registry:  registry,
		narrator:  narrator,
		logger:    logger,
		instLimit: instLimit,
	}
}

// RunFile executes the Lua script at path.
//
// Postcondition: Returns nil on success, or an error on load failure, Lua
// runtime error, cancellation of ctx, or instruction limit exhaustion. The
// last case wraps ErrInstructionLimit.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.run(ctx, path, func(L *lua.LState) error { return L.DoFile(path) })
}

// RunString executes src as a Lua chunk.
//
// Postcondition: as RunFile.
func (r *Runner) RunString(ctx context.Context, src string) error {
	return r.run(ctx, "<string>", func(L *lua.LState) error { return L.DoString(src) })
}

func (r *Runner) run(ctx context.Context, name string, exec func(*lua.LState) error) error {
	start := time.Now()

	sb := NewSandbox(ctx, r.instLimit)
	defer sb.Close()

	r.RegisterModule(sb.L)

	if err := exec(sb.L); err != nil {
		if sb.Exhausted() {
			err = fmt.Errorf("%w: %w", ErrInstructionLimit, err)
		}
		r.logger.Warn("scenario script failed",
			zap.String("script", name),
			zap.Bool("instruction_limit", sb.Exhausted()),
			zap.Error(err),
		)
		return fmt.Errorf("scripting: running %q: %w", name, err)
	}

	r.logger.Info("scenario script complete",
		zap.String("script", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
