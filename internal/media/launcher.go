package media

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pders01/reel/internal/debuglog"
)

var ErrNoOpener = errors.New("no application found to open URL")

// Launcher opens URLs in external programs without blocking the caller.
type Launcher struct {
	registry *Registry
	goos     string
	override string

	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewLauncher builds a launcher for the running platform. A non-empty
// override is used for every URL instead of the registry's choice.
func NewLauncher(override string) *Launcher {
	registry, err := NewRegistry()
	if err != nil {
		debuglog.Warnf("opener definitions unavailable: %v", err)
		registry, _ = parseRegistry(nil)
	}
	return &Launcher{
		registry: registry,
		goos:     runtime.GOOS,
		override: override,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Open launches the program for url.
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}

	program := l.override
	if program == "" {
		kind := l.registry.DetectKind(url)
		program = l.find(l.registry.Candidates(l.goos, kind))
	}
	if program == "" {
		return ErrNoOpener
	}

	args := l.registry.Args(program, url)
	debuglog.Debugf("opening %s with %s %v", url, program, args)
	if err := l.start(program, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", program, err)
	}
	return nil
}

func (l *Launcher) find(candidates []string) string {
	for _, c := range candidates {
		if _, err := l.lookPath(c); err == nil {
			return c
		}
	}
	return ""
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
