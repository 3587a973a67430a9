package httpapi

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// dashboardFS is rooted at static/.
var dashboardFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}()
