// Package recentfile locates and atomically rewrites the
// recently-used.xbel manifest.
package recentfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/jmylchreest/xbelclean/pkg/xbel"
)

const manifestName = "recently-used.xbel"

// Locate returns the manifest path in the user's XDG data directory,
// where GTK applications keep it.
func Locate() string {
	return filepath.Join(xdg.DataHome, manifestName)
}

// tempPath returns a timestamp-suffixed sibling of path. The temp file
// lives in the same directory so the final rename never crosses a
// filesystem boundary.
func tempPath(path string, now time.Time) string {
	return path + "-" + now.Format(time.RFC3339Nano)
}

// Preview writes the filtered manifest to w without touching the file.
func Preview(path string, w io.Writer, prefixes []string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = in.Close() }()

	if err := xbel.Filter(in, w, prefixes); err != nil {
		return fmt.Errorf("filter manifest: %w", err)
	}
	return nil
}

// Rewrite filters the manifest at path in place. The filtered output is
// written to a fresh temp file next to the original and renamed over it
// only after the whole pass succeeded, so a failed run never corrupts
// the manifest: the partial output is removed and the original is left
// untouched.
func Rewrite(path string, prefixes []string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat manifest: %w", err)
	}

	tmp := tempPath(path, time.Now())
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}

	if err := xbel.Filter(in, out, prefixes); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("filter manifest: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync temp manifest: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
