package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
)

// ContentReloadJob watches a content directory and rebuilds the registry when
// a file in it is added, removed or modified. It also applies reloads
// requested elsewhere, such as on SIGHUP. Not safe for concurrent use; run it
// on a single worker.
type ContentReloadJob struct {
	registry *registry.Registry
	dir      string
	modTime  time.Time
	files    int
}

// NewContentReloadJob records the directory's current state so the first run
// only reloads on a later change
func NewContentReloadJob(reg *registry.Registry, dir string) *ContentReloadJob {
	j := &ContentReloadJob{registry: reg, dir: dir}
	j.modTime, j.files = scanContentDir(dir)
	return j
}

// Process requests a reload if the directory changed, then runs any pending reload
func (j *ContentReloadJob) Process(ctx context.Context) error {
	if j.dir != "" {
		modTime, files := scanContentDir(j.dir)
		if files != j.files || modTime.After(j.modTime) {
			logger.FromContext(ctx).Info(LogMsgContentChanged, LogFieldDir, j.dir, LogFieldFiles, files)
			j.modTime, j.files = modTime, files
			j.registry.RequestReload()
		}
	}
	return j.registry.ReloadIfRequested(ctx)
}

// scanContentDir returns the newest modification time and file count under
// dir. A missing directory has no files.
func scanContentDir(dir string) (time.Time, int) {
	var (
		newest time.Time
		files  int
	)
	if dir == "" {
		return newest, files
	}
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files++
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn(LogMsgContentScanFailed, LogFieldDir, dir, LogFieldError, err)
	}
	return newest, files
}
