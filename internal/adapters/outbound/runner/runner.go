package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/cppgm/styletools/internal/domain"
)

// ExecRunner implements domain.CommandRunner with os/exec. The child shares the
// runner's standard streams; its output is not intercepted.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory for every command; empty means the current directory.
	Dir string
}

func New() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes cmd and waits for it. Non-zero exit statuses are ignored.
func (r *ExecRunner) Run(ctx context.Context, cmd domain.FormatCommand) error {
	if len(cmd) == 0 {
		return errors.New("empty command")
	}

	c := exec.CommandContext(ctx, cmd[0], cmd[1:]...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	c.Dir = r.Dir

	err := c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", cmd[0], err)
	}
	return nil
}
