package starlarkeval

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"go.starlark.net/starlark"
)

// Interpreter executes starlark files against a fixed set of predeclared
// builtins.
type Interpreter struct {
	// Global state
	globals starlark.StringDict
	// Builtins visible to every file
	predeclared starlark.StringDict
	// Thread context
	thread *starlark.Thread
	// Last eval error
	evalErr *starlark.EvalError
	logger  zerolog.Logger
}

// ExecError is returned when a file fails during evaluation.
type ExecError struct {
	Filename  string
	Backtrace string
	Err       error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %s", e.Filename, e.Backtrace)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func NewInterpreter(logger zerolog.Logger, predeclared starlark.StringDict) *Interpreter {
	return &Interpreter{
		logger:      logger,
		predeclared: predeclared,
		globals:     starlark.StringDict{},
		thread: &starlark.Thread{
			Name: "model",
			Print: func(thread *starlark.Thread, msg string) {
				logger.Info().Str("thread", thread.Name).Msg(msg)
			},
		},
	}
}

func (i *Interpreter) GetGlobal(name string) starlark.Value {
	return i.globals[name]
}

// EvalError returns the backtrace holder of the last failed Exec, if any.
func (i *Interpreter) EvalError() *starlark.EvalError {
	return i.evalErr
}

func (i *Interpreter) Exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	i.evalErr = nil
	state, err := starlark.ExecFile(i.thread, filename, bytes.NewReader(data), i.predeclared)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			i.evalErr = evalErr
			return &ExecError{Filename: filename, Backtrace: evalErr.Backtrace(), Err: err}
		}
		return err
	}
	i.globals = state
	return nil
}
