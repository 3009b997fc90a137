package procutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"
)

// Process is a started external command with combined output available as a
// stream.
type Process struct {
	cmd    *exec.Cmd
	output io.ReadCloser
}

// Start launches args[0] with the remaining arguments. The process inherits
// the current environment merged with env (env entries win). Stderr is
// folded into the output stream.
func Start(ctx context.Context, args []string, env map[string]string) (*Process, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("procutil: no command given")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = mergeEnv(os.Environ(), env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd, output: stdout}, nil
}

func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	out := make([]string, len(base), len(base)+len(extra))
	copy(out, base)
	for k, v := range extra {
		out = append(out, k+"="+v)
	}
	return out
}

// PID returns the process id.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Output returns the combined stdout/stderr stream. It must be drained
// before Wait returns.
func (p *Process) Output() io.Reader {
	return p.output
}

// Wait blocks until the process exits.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Kill terminates the process.
func (p *Process) Kill() error {
	return p.cmd.Process.Kill()
}

// KillProcess asks the process with the given pid to terminate. On Unix a
// SIGTERM is delivered so the process can shut down cleanly; on Windows the
// process is killed.
func KillProcess(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		return proc.Kill()
	}
	return proc.Signal(syscall.SIGTERM)
}
