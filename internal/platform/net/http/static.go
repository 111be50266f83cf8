package http

import (
	stdhttp "net/http"
	"os"

	"hebdate/internal/platform/logger"
)

// MountStatic serves files from dir at the router root; a missing dir is skipped with a warning
// Returns whether anything was mounted
func MountStatic(r Router, dir string) bool {
	if dir == "" {
		return false
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		logger.Named("http").Warn().Str("dir", dir).Msg("static dir not found; skipping")
		return false
	}
	fs := stdhttp.FileServer(stdhttp.Dir(dir))
	r.Handle("/*", fs)
	return true
}
