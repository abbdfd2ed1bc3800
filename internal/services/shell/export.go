package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/louisbranch/appshell/internal/services/shell/navigation"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
	"github.com/louisbranch/appshell/internal/services/shell/routing"
	shellstatic "github.com/louisbranch/appshell/internal/services/shell/static"
)

// Export prerenders every sidebar destination into dir as <path>/index.html
// and copies the embedded assets under static/. It drives the pages through
// the same activation path a pointer click takes. Written files are returned
// relative to dir, pages first.
func Export(ctx context.Context, cfg Config, dir string) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("export directory is required")
	}
	router, err := NewRouter(cfg.Registry)
	if err != nil {
		return nil, err
	}
	shell := cfg.shell()
	logger := cfg.logger()

	var written []string
	session, err := routing.NewSession(router, func(ctx context.Context, match routing.Match) error {
		rel := pageFile(match.Path)
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("export %s: %w", match.Path, err)
		}
		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("export %s: %w", match.Path, err)
		}
		renderErr := shell.Document(match).Render(ctx, f)
		if closeErr := f.Close(); renderErr == nil {
			renderErr = closeErr
		}
		if renderErr != nil {
			return fmt.Errorf("export %s: %w", match.Path, renderErr)
		}
		written = append(written, rel)
		logger.WithField("path", match.Path).WithField("file", rel).Debug("exported page")
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range navigation.Items(cfg.Registry, "") {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if _, err := item.Activate(ctx, session, navigation.TriggerPointer); err != nil {
			return written, err
		}
	}

	assets, err := exportAssets(dir)
	written = append(written, assets...)
	return written, err
}

func pageFile(routePath string) string {
	clean := strings.TrimPrefix(routepath.Clean(routePath), "/")
	return path.Join(clean, "index.html")
}

func exportAssets(dir string) ([]string, error) {
	var written []string
	err := fs.WalkDir(shellstatic.FS, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		data, err := fs.ReadFile(shellstatic.FS, name)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(routepath.Static(name), "/")
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("export assets: %w", err)
	}
	return written, nil
}
