// Package launch hands finished documents to the platform's default viewer.
//
// [System] starts the OS opener (open, xdg-open or start) and returns as soon
// as the process is running; it never waits for the viewer to exit. Tests and
// headless runs use [Noop], and callers that need custom behaviour can adapt
// any function with [Func].
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Launcher opens a file in a viewer.
type Launcher interface {
	Open(path string) error
}

// Func adapts an ordinary function to a [Launcher].
type Func func(path string) error

func (f Func) Open(path string) error { return f(path) }

// Noop opens nothing. It is used for --no-open and in tests.
type Noop struct{}

func (Noop) Open(string) error { return nil }

// System opens files with the operating system's default handler.
type System struct {
	// GOOS overrides runtime.GOOS. Empty means the running platform.
	GOOS string
}

// Open resolves path to an absolute file and starts the platform opener on
// it. The opener is detached: Open does not wait for it to exit.
func (s System) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	name, args, err := Command(s.goos(), abs)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return cmd.Process.Release()
}

func (s System) goos() string {
	if s.GOOS != "" {
		return s.GOOS
	}
	return runtime.GOOS
}

// Command returns the opener invocation for a platform.
func Command(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	case "windows":
		// The empty argument is start's window title; without it a quoted
		// path would be taken as the title.
		return "cmd", []string{"/c", "start", "", path}, nil
	}
	return "", nil, fmt.Errorf("unsupported platform: %s", goos)
}

var (
	_ Launcher = System{}
	_ Launcher = Noop{}
	_ Launcher = Func(nil)
)
