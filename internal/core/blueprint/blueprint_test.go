package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBlueprint() *Blueprint {
	return &Blueprint{
		Project: Project{Name: "copycat-backend"},
		Module:  Module{Name: "copycat", Dependency: "github.com/gin-gonic/gin", MinGo: "1.21"},
		Entries: []Entry{
			{Path: "cmd/server", Kind: KindDir},
			{Path: "config/config.yaml", Kind: KindFile, Content: "server:\n  port: 8080"},
		},
		Templates: []Template{
			{Path: ".gitignore", Content: "/server\n"},
		},
	}
}

func TestValidate_AcceptsWellFormedBlueprint(t *testing.T) {
	require.NoError(t, validBlueprint().Validate())
}

func TestValidate_RejectsUnknownKind(t *testing.T) {
	bp := validBlueprint()
	bp.Entries = append(bp.Entries, Entry{Path: "pkg/logger", Kind: "symlink"})

	err := bp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestValidate_RejectsMissingKind(t *testing.T) {
	bp := validBlueprint()
	bp.Entries = append(bp.Entries, Entry{Path: "pkg/logger"})

	require.Error(t, bp.Validate())
}

func TestValidate_RejectsContentOnDirectory(t *testing.T) {
	bp := validBlueprint()
	bp.Entries = append(bp.Entries, Entry{Path: "scripts", Kind: KindDir, Content: "#!/bin/sh\n"})

	err := bp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot carry content")
}

// A directory whose final segment contains a dot must stay a directory:
// the explicit tag decides, not the path shape.
func TestValidate_AllowsDottedDirectoryNames(t *testing.T) {
	bp := validBlueprint()
	bp.Entries = append(bp.Entries, Entry{Path: "internal/api/v1.0", Kind: KindDir})

	require.NoError(t, bp.Validate())
}

func TestValidate_RejectsBadPaths(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"absolute": "/etc/passwd",
		"escape":   "../outside",
		"sneaky":   "docs/../../outside",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			bp := validBlueprint()
			bp.Entries = append(bp.Entries, Entry{Path: path, Kind: KindDir})
			require.Error(t, bp.Validate())
		})
	}
}

func TestValidate_RejectsMissingModuleMetadata(t *testing.T) {
	bp := validBlueprint()
	bp.Module.Dependency = ""
	require.Error(t, bp.Validate())

	bp = validBlueprint()
	bp.Module.Name = ""
	require.Error(t, bp.Validate())

	bp = validBlueprint()
	bp.Project.Name = ""
	require.Error(t, bp.Validate())
}
