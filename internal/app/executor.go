package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Operations that replace stored state run as
// validate → perform → verify → archive → respond, so nothing is
// persisted until the fetched or parsed input has been checked.

// ExecutionStep names a stage of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step an operation failed in.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs Operations with step-level logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger uses slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation supplies one function per step. Nil steps are skipped and pass
// the zero value on.
type Operation[I, P, V, O any] struct {
	Name string

	// Validate rejects bad input before anything else runs.
	Validate func(ctx context.Context, input I) error

	// Perform does the work, e.g. fetching or parsing.
	Perform func(ctx context.Context, input I) (P, error)

	// Verify checks what Perform produced and converts it for Archive.
	Verify func(ctx context.Context, input I, performed P) (V, error)

	// Archive persists the verified result.
	Archive func(ctx context.Context, input I, verified V) error

	// Respond shapes the result for the caller.
	Respond func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op for input. Errors from the first four steps are wrapped
// in an ExecutionError; Respond errors are returned as-is.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var (
		zero      O
		performed P
		verified  V
	)

	logger := exec.logger
	if fromCtx := logging.FromContext(ctx); fromCtx != slog.Default() {
		logger = fromCtx
	}
	logger = logger.With(slog.String("operation", op.Name))

	start := time.Now()

	if op.Validate != nil {
		if err := step(ctx, logger, StepValidate, "input validation failed", func() error {
			return op.Validate(ctx, input)
		}); err != nil {
			return zero, err
		}
	}

	if op.Perform != nil {
		if err := step(ctx, logger, StepPerform, "operation failed", func() (err error) {
			performed, err = op.Perform(ctx, input)
			return err
		}); err != nil {
			return zero, err
		}
	}

	if op.Verify != nil {
		if err := step(ctx, logger, StepVerify, "verification failed", func() (err error) {
			verified, err = op.Verify(ctx, input, performed)
			return err
		}); err != nil {
			return zero, err
		}
	}

	if op.Archive != nil {
		if err := step(ctx, logger, StepArchive, "state persistence failed", func() error {
			return op.Archive(ctx, input, verified)
		}); err != nil {
			return zero, err
		}
	}

	result := zero
	if op.Respond != nil {
		var err error
		if result, err = op.Respond(ctx, input, verified); err != nil {
			logger.WarnContext(ctx, "respond failed", slog.Any("error", err))
			return zero, err
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

func step(ctx context.Context, logger *slog.Logger, s ExecutionStep, msg string, fn func() error) error {
	logger.DebugContext(ctx, "step started", slog.String("step", string(s)))

	if err := fn(); err != nil {
		level := slog.LevelError
		if s == StepValidate {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "step failed", slog.String("step", string(s)), slog.Any("error", err))

		return &ExecutionError{Step: s, Message: msg, Cause: err}
	}

	return nil
}

// ExecutionStepOf returns the step err failed in, if it is an ExecutionError.
func ExecutionStepOf(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
