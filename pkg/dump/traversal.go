// File: pkg/dump/traversal.go
package dump

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// matchesSuffix reports whether name ends with at least one of the suffixes.
func matchesSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// CollectFiles walks a root directory and returns the paths of every file
// whose name matches one of the suffixes, in walk order.
// Any error accessing the root or one of its descendants aborts the walk.
// A root that is a symlink to a directory is followed; links below it are not.
func CollectFiles(root string, suffixes []string, logger *zap.Logger) ([]string, error) {
	var files []string
	logger.Debug("Starting file traversal", zap.String("root", root), zap.Strings("suffixes", suffixes))

	err := filepath.WalkDir(walkRoot(root, logger), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}
		if d.IsDir() {
			return nil
		}

		if !matchesSuffix(d.Name(), suffixes) {
			logger.Debug("Skipping file without matching suffix", zap.String("filePath", path))
			return nil
		}

		regular, err := isRegularTarget(path, d)
		if err != nil {
			logger.Error("Failed to stat file during traversal", zap.String("filePath", path), zap.Error(err))
			return err
		}
		if !regular {
			logger.Debug("Skipping non-regular file", zap.String("filePath", path), zap.Stringer("mode", d.Type()))
			return nil
		}

		files = append(files, path)
		logger.Debug("Added file to collection list", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Completed file traversal", zap.String("root", root), zap.Int("matchedFiles", len(files)))
	return files, nil
}

// walkRoot returns the path to hand to WalkDir for root. WalkDir does not
// follow a symlinked root, but it does follow a path with a trailing
// separator; walked paths are joined and cleaned, so they still start with root.
func walkRoot(root string, logger *zap.Logger) string {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	target, err := os.Stat(root)
	if err != nil || !target.IsDir() {
		return root
	}
	logger.Debug("Following symlinked root directory", zap.String("root", root))
	return root + string(filepath.Separator)
}

// isRegularTarget reports whether a walked entry is a regular file, following
// symlinks one level so links to files count and links to directories do not.
func isRegularTarget(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
