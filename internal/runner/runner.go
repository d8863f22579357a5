// Package runner executes a single AWS CLI invocation under a chosen profile.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

const awsBinary = "aws"

var (
	// ErrNoCommand is returned when no command tokens are given.
	ErrNoCommand = errors.New("no command provided to execute")

	// ErrSpawn is returned when the child process could not be started.
	ErrSpawn = errors.New("failed to execute command")
)

// Runner spawns child processes with an overridden AWS_PROFILE.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env is the environment inherited by the child, os.Environ() when nil.
	Env []string
}

// BuildArgs returns the argv for tokens, prefixed with "aws" unless the
// first token already is "aws".
func BuildArgs(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, ErrNoCommand
	}
	if tokens[0] == awsBinary {
		return append([]string(nil), tokens...), nil
	}
	return append([]string{awsBinary}, tokens...), nil
}

// Environ returns env with AWS_PROFILE set to profile, replacing any
// existing AWS_PROFILE entry.
func Environ(env []string, profile string) []string {
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, "AWS_PROFILE=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, "AWS_PROFILE="+profile)
}

// Run executes tokens under profile and waits for the child to exit. The
// exit status is reported on Stdout; a non-zero status is not an error. A
// child that cannot be started is reported on Stderr and returns ErrSpawn.
func (r *Runner) Run(ctx context.Context, profile string, tokens []string) error {
	args, err := BuildArgs(tokens)
	if err != nil {
		return err
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	command := exec.CommandContext(ctx, args[0], args[1:]...)
	command.Stdin = r.Stdin
	command.Stdout = r.Stdout
	command.Stderr = r.Stderr
	command.Env = Environ(env, profile)

	// The child shares the terminal and handles interrupts itself
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := command.Start(); err != nil {
		fmt.Fprintf(r.Stderr, "Failed to execute command: %v\n", err)
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	if err := command.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(r.Stderr, "Failed to wait for command: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(r.Stdout, "Command exited with status: %s\n", command.ProcessState)
	return nil
}
