package bonfire

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	oerrors "github.com/project-koku/snapdeploy/internal/errors"
)

// Runner executes invocations with the process environment plus the
// invocation's extra entries. The zero value writes to the parent's streams.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the invocation, streaming output through, and returns bonfire's
// failure verbatim. Cancellation of ctx kills the child process.
func (r Runner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Env = append(os.Environ(), inv.Env...)

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return oerrors.NewConnectivityError("bonfire executable not found in PATH", err)
		}
		return err
	}
	return nil
}
