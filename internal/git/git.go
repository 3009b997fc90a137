// Package git wraps the handful of git operations a release needs. All
// invocations go through a procutil.Runner so tests can capture the exact
// commands without a real repository.
package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gorel/pkg/procutil"
)

// Git runs git commands in a fixed working directory.
type Git struct {
	runner procutil.Runner
	dir    string
}

// New returns a Git bound to dir using runner.
func New(runner procutil.Runner, dir string) *Git {
	return &Git{runner: runner, dir: dir}
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := procutil.JoinArgs(append([]string{"git"}, args...)...)
	if err := g.runner.Execute(ctx, cmd, g.dir, &out, &errOut); err != nil {
		msg := strings.TrimSpace(errOut.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s: %w", args[0], msg, err)
		}
		return "", fmt.Errorf("%s: %w", args[0], err)
	}
	return strings.TrimSpace(out.String()), nil
}

// IsClean reports whether the working tree has no staged or unstaged
// changes.
func (g *Git) IsClean(ctx context.Context) (bool, error) {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// Add stages the given paths.
func (g *Git) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := g.run(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// Commit records the staged changes with message.
func (g *Git) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

// TagAnnotated creates an annotated tag named tag with message.
func (g *Git) TagAnnotated(ctx context.Context, tag, message string) error {
	_, err := g.run(ctx, "tag", "-a", tag, "-m", message)
	return err
}

// TagExists reports whether tag already names a ref.
func (g *Git) TagExists(ctx context.Context, tag string) (bool, error) {
	out, err := g.run(ctx, "tag", "--list", tag)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Head returns the full hash of the current commit.
func (g *Git) Head(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "HEAD")
}
