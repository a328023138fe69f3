package proc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts subprocess invocation so pipeline code can be exercised
// with a recording fake instead of spawning real tools.
type Runner interface {
	Run(ctx context.Context, dir string, command string, args ...string) error
}

// Exec runs the tool as a child process with inherited standard streams.
type Exec struct{}

func (r *Exec) Run(ctx context.Context, dir string, command string, args ...string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	return nil
}

// Invocation is one recorded Run call.
type Invocation struct {
	Dir     *string
	Command *string
	Args    []string
}

func (r *Invocation) String() string {
	return strings.Join(append([]string{*r.Command}, r.Args...), " ")
}

// Recorder records invocations instead of executing them. Err, when set,
// is returned by every Run call to simulate a failing tool.
type Recorder struct {
	Invocations []*Invocation
	Err         error
}

func (r *Recorder) Run(ctx context.Context, dir string, command string, args ...string) error {
	r.Invocations = append(r.Invocations, &Invocation{
		Dir:     &dir,
		Command: &command,
		Args:    args,
	})
	return r.Err
}
