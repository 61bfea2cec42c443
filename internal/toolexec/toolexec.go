// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolexec runs the external binaries the pipeline depends on
// (Ghostscript, ExifTool) behind a small interface so callers can be
// tested without the tools installed.
package toolexec

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution.
type Runner interface {
	// LookPath reports where the named binary lives on PATH.
	LookPath(file string) (string, error)

	// Run executes the command and returns its combined output.
	Run(name string, args ...string) ([]byte, error)
}

// osRunner is the production Runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Default is the Runner used outside tests.
var Default Runner = osRunner{}

// Available reports whether the named binary exists on PATH.
func Available(r Runner, name string) bool {
	_, err := r.LookPath(name)
	return err == nil
}

// ToolError reports a failed external tool invocation together with the
// tool's diagnostic output, so callers can distinguish tool failures from
// this program's own errors and surface what the tool said.
type ToolError struct {
	Tool   string
	Output []byte
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
