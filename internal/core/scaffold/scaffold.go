// Package scaffold materializes a blueprint onto the filesystem.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/copycat-mvp/copyscaff/internal/core/blueprint"
)

var (
	dirLabel  = color.New(color.FgBlue).SprintFunc()
	fileLabel = color.New(color.FgGreen).SprintFunc()
)

// Create writes every blueprint entry under base, then every template.
// Parent directories are created on demand for each path, so entry order
// never matters. Existing directories are reused; existing files are
// truncated and rewritten. Templates run last so their content wins over
// any same-path entry.
//
// The first filesystem error aborts the walk and is returned wrapped.
// Nothing already written is rolled back; a partial tree is left in place.
// Progress lines go to out, one per path created.
func Create(base string, bp *blueprint.Blueprint, out io.Writer) error {
	for _, e := range bp.Entries {
		target := filepath.Join(base, filepath.FromSlash(e.Path))
		switch e.Kind {
		case blueprint.KindDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", e.Path, err)
			}
			_, _ = fmt.Fprintf(out, "  [%s]  Created: %s\n", dirLabel("Dir"), e.Path)
		case blueprint.KindFile:
			if err := writeFile(target, e.Content); err != nil {
				return fmt.Errorf("creating file %s: %w", e.Path, err)
			}
			_, _ = fmt.Fprintf(out, "  [%s] Created: %s\n", fileLabel("File"), e.Path)
		default:
			// Validate catches this before a run; kept as a guard for
			// blueprints constructed directly in code.
			return fmt.Errorf("entry %s: unknown kind %q", e.Path, e.Kind)
		}
	}

	for _, t := range bp.Templates {
		target := filepath.Join(base, filepath.FromSlash(t.Path))
		if err := writeFile(target, t.Content); err != nil {
			return fmt.Errorf("writing template %s: %w", t.Path, err)
		}
		_, _ = fmt.Fprintf(out, "  [%s] Created: %s\n", fileLabel("File"), t.Path)
	}

	return nil
}

// writeFile creates or truncates target with the given content, ensuring
// the parent directory chain exists first.
func writeFile(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.WriteString(content)
	return err
}
