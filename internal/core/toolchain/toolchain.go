// Package toolchain drives the external Go toolchain to initialize the
// generated project's module: go mod init, go get, go mod tidy, all run
// with the working directory pinned to the scaffold target.
//
// Nothing in this package is fatal to the caller. Every outcome, including
// a missing go binary, is reported through Result so the scaffold run can
// downgrade it to a warning and still finish.
package toolchain

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/copycat-mvp/copyscaff/internal/core/blueprint"
)

// Status classifies a bootstrap outcome.
type Status int

const (
	// StatusOK means every step completed.
	StatusOK Status = iota
	// StatusToolchainMissing means the go binary could not be found.
	StatusToolchainMissing
	// StatusGoTooOld means the installed toolchain reported a version below
	// the blueprint's minimum, or one that could not be parsed.
	StatusGoTooOld
	// StatusStepFailed means a toolchain command exited non-zero.
	StatusStepFailed
)

// Result reports how far the bootstrap got. Step and Output are filled in
// for failures; Output carries the failing command's combined output.
type Result struct {
	Status Status
	Step   string
	Output string
	Err    error
}

// OK reports whether every step completed.
func (r Result) OK() bool { return r.Status == StatusOK }

// Warning renders the single human-readable line shown when a bootstrap
// fails. Callers print it and move on; the scaffold itself already succeeded.
func (r Result) Warning() string {
	switch r.Status {
	case StatusToolchainMissing:
		return "Go toolchain not found in PATH; skipping module setup. Install Go and run 'go mod init' manually."
	case StatusGoTooOld:
		return fmt.Sprintf("Go toolchain check failed: %v; skipping module setup.", r.Err)
	case StatusStepFailed:
		return fmt.Sprintf("'%s' failed: %v; skipping remaining module setup.", r.Step, r.Err)
	default:
		return ""
	}
}

// Runner executes one external command in dir and returns its combined
// output. Tests swap in a fake to avoid spawning processes.
type Runner func(dir, name string, args ...string) ([]byte, error)

func defaultRunner(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Bootstrapper runs the module setup sequence for one scaffolded project.
type Bootstrapper struct {
	Dir        string
	Module     string
	Dependency string
	MinGo      string
	Run        Runner
}

// New returns a Bootstrapper for the given target directory, configured
// from the blueprint's module metadata.
func New(dir string, bp *blueprint.Blueprint) *Bootstrapper {
	return &Bootstrapper{
		Dir:        dir,
		Module:     bp.Module.Name,
		Dependency: bp.Module.Dependency,
		MinGo:      bp.Module.MinGo,
		Run:        defaultRunner,
	}
}

// Matches the version token in "go version go1.22.3 linux/amd64".
var goVersionRe = regexp.MustCompile(`go(\d+(?:\.\d+){1,2})`)

type step struct {
	name string
	args []string
}

// Bootstrap runs, in order: a toolchain version check, go mod init,
// go get, go mod tidy. The first failure stops the sequence and is
// reported in the Result. There are no retries and no timeouts; a hung
// subprocess hangs the run.
func (b *Bootstrapper) Bootstrap() Result {
	out, err := b.Run(b.Dir, "go", "version")
	if err != nil {
		return classify("go version", out, err)
	}
	if b.MinGo != "" {
		if err := checkVersion(string(out), b.MinGo); err != nil {
			return Result{Status: StatusGoTooOld, Step: "go version", Output: string(out), Err: err}
		}
	}

	steps := []step{
		{"go mod init", []string{"mod", "init", b.Module}},
		{"go get", []string{"get", b.Dependency}},
		{"go mod tidy", []string{"mod", "tidy"}},
	}
	for _, s := range steps {
		out, err := b.Run(b.Dir, "go", s.args...)
		if err != nil {
			return classify(s.name, out, err)
		}
	}
	return Result{Status: StatusOK}
}

// classify separates "binary not installed" from "command ran and failed".
func classify(stepName string, out []byte, err error) Result {
	status := StatusStepFailed
	if errors.Is(err, exec.ErrNotFound) {
		status = StatusToolchainMissing
	}
	return Result{Status: status, Step: stepName, Output: string(out), Err: err}
}

// checkVersion parses `go version` output and compares it against the
// blueprint minimum. Unparseable output fails the check: a gate that
// cannot read the version cannot pass it.
func checkVersion(versionOutput, minGo string) error {
	m := goVersionRe.FindStringSubmatch(versionOutput)
	if m == nil {
		return fmt.Errorf("unrecognized 'go version' output: %q", strings.TrimSpace(versionOutput))
	}
	installed, err := semver.NewVersion(m[1])
	if err != nil {
		return fmt.Errorf("parsing go version %q: %w", m[1], err)
	}
	constraint, err := semver.NewConstraint(">= " + minGo)
	if err != nil {
		return fmt.Errorf("invalid minimum go version %q: %w", minGo, err)
	}
	if !constraint.Check(installed) {
		return fmt.Errorf("go %s is older than the required minimum %s", installed, minGo)
	}
	return nil
}
