// Package blueprint defines the typed description of everything the
// scaffolder generates: the directory/file entries, the fixed templates
// written after them, and the module metadata handed to the toolchain.
package blueprint

import (
	"fmt"
	"path"
	"strings"
)

// Kind tags an Entry explicitly as a directory or a file. Earlier versions
// of the generator guessed from the presence of content or a dot in the
// final path segment; the tag removes that ambiguity.
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// Entry is a single path in the generated tree. Content is meaningful only
// for KindFile; an empty Content produces an empty file.
type Entry struct {
	Path    string `toml:"path"`
	Kind    Kind   `toml:"kind"`
	Content string `toml:"content,omitempty"`
}

// Template is a seed file written unconditionally after the entry pass,
// always as a file, overwriting whatever is at its path.
type Template struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
}

// Project holds display metadata for the generated project.
type Project struct {
	Name string `toml:"name"`
}

// Module describes the Go module the bootstrapper initializes: the manifest
// name, the single dependency fetched into it, and the minimum toolchain
// version accepted by the version gate.
type Module struct {
	Name       string `toml:"name"`
	Dependency string `toml:"dependency"`
	MinGo      string `toml:"min_go"`
}

// Blueprint is the complete, immutable input to a scaffold run. It is
// decoded once from the embedded resource and never mutated.
type Blueprint struct {
	Project   Project    `toml:"project"`
	Module    Module     `toml:"module"`
	Entries   []Entry    `toml:"entry"`
	Templates []Template `toml:"template"`
}

// Validate checks the blueprint for mistakes that would otherwise surface
// as confusing filesystem errors mid-run: unknown kinds, paths escaping the
// target directory, content attached to a directory entry.
func (b *Blueprint) Validate() error {
	if b.Project.Name == "" {
		return fmt.Errorf("blueprint: project name is required")
	}
	if b.Module.Name == "" {
		return fmt.Errorf("blueprint: module name is required")
	}
	if b.Module.Dependency == "" {
		return fmt.Errorf("blueprint: module dependency is required")
	}
	for _, e := range b.Entries {
		if err := validatePath(e.Path); err != nil {
			return fmt.Errorf("blueprint: entry %q: %w", e.Path, err)
		}
		switch e.Kind {
		case KindFile:
			// content optional, empty file is fine
		case KindDir:
			if e.Content != "" {
				return fmt.Errorf("blueprint: entry %q: directory entries cannot carry content", e.Path)
			}
		default:
			return fmt.Errorf("blueprint: entry %q: unknown kind %q", e.Path, e.Kind)
		}
	}
	for _, t := range b.Templates {
		if err := validatePath(t.Path); err != nil {
			return fmt.Errorf("blueprint: template %q: %w", t.Path, err)
		}
	}
	return nil
}

func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("path is empty")
	}
	if path.IsAbs(p) {
		return fmt.Errorf("path must be relative")
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path escapes the target directory")
	}
	return nil
}
