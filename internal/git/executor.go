package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/masmgr/gitpoll/internal/logging"
)

// Command is a single invocation of the VCS executable.
type Command struct {
	Executable string
	Args       []string
	Dir        string
	Timeout    time.Duration
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Executable + " " + strings.Join(c.Args, " "))
}

// Result holds the outcome of a finished (or aborted) command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// ExecError is returned when a command cannot start, exits non-zero or times out.
type ExecError struct {
	Command Command
	Result  Result
	Err     error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if stderr := strings.TrimSpace(e.Result.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// CommandExecutor runs VCS commands. Implementations block until the command
// exits or its timeout elapses.
type CommandExecutor interface {
	Execute(ctx context.Context, cmd Command) (Result, error)
}

// waitDelay bounds how long Execute waits for output after a kill.
const waitDelay = 5 * time.Second

// CLIExecutor runs commands as local subprocesses.
type CLIExecutor struct {
	// Env is appended to the inherited environment.
	Env []string
}

// NewCLIExecutor returns an executor that pins git's locale so that
// diagnostics on stderr are stable and never prompts for credentials.
func NewCLIExecutor() *CLIExecutor {
	return &CLIExecutor{Env: []string{"LC_ALL=C", "LANG=C", "GIT_TERMINAL_PROMPT=0"}}
}

// Execute implements CommandExecutor.
func (e *CLIExecutor) Execute(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Executable, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), e.Env...)
	// Children such as ssh may keep the pipes open after git is killed.
	c.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	logging.Logger.Debug("Running command", "command", cmd.String(), "dir", cmd.Dir)

	err := c.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if c.ProcessState != nil {
		res.ExitCode = c.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		res.TimedOut = true
		logging.Logger.Warn("Command timed out", "command", cmd.String(), "timeout", cmd.Timeout)
		return res, &ExecError{Command: cmd, Result: res, Err: ErrTimeout}
	}
	if err != nil {
		logging.Logger.Warn("Command failed", "command", cmd.String(), "exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return res, &ExecError{Command: cmd, Result: res, Err: err}
	}
	return res, nil
}

// Compile-time interface conformance check.
var _ CommandExecutor = (*CLIExecutor)(nil)

// runner binds an executor to the executable, directory and timeout shared by
// every command a component issues.
type runner struct {
	exec       CommandExecutor
	executable string
	dir        string
	timeout    time.Duration
}

func (r runner) run(ctx context.Context, args ...string) (Result, error) {
	return r.runIn(ctx, r.dir, args...)
}

func (r runner) runIn(ctx context.Context, dir string, args ...string) (Result, error) {
	return r.exec.Execute(ctx, Command{
		Executable: r.executable,
		Args:       args,
		Dir:        dir,
		Timeout:    r.timeout,
	})
}

// stderrOf returns the stderr captured in err, if err carries an ExecError.
func stderrOf(err error) string {
	var execErr *ExecError
	if errors.As(err, &execErr) {
		return execErr.Result.Stderr
	}
	return ""
}
