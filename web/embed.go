package web

import (
	"embed"

	"github.com/spf13/afero"
)

// FS contains the embedded static assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// Assets returns the filesystem static files are served from. With an empty
// dir it is the embedded copy; otherwise dir on disk, read-only.
func Assets(dir string) afero.Fs {
	if dir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	}
	return afero.NewBasePathFs(afero.FromIOFS{FS: FS}, "static")
}
