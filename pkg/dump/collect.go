// File: pkg/dump/collect.go
package dump

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Collect walks every root in order and returns the captioned contents of
// all matching files as one string. On error no partial output is returned.
func Collect(params Params, logger *zap.Logger) (string, error) {
	entries, err := CollectEntries(params, logger)
	if err != nil {
		return "", err
	}
	return Join(entries), nil
}

// CollectEntries returns one entry per matching file, roots in input order
// and files in walk order within each root.
func CollectEntries(params Params, logger *zap.Logger) ([]FileEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var entries []FileEntry
	for _, root := range params.Roots {
		root = filepath.Clean(root)
		logger.Debug("Processing root", zap.String("root", root))

		files, err := CollectFiles(root, params.Suffixes, logger)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			entry, err := ProcessSingleFile(file, root, params, logger)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}

	logger.Debug("Collected entries", zap.Int("entryCount", len(entries)))
	return entries, nil
}

// Join renders entries as caption, blank line, content, with a blank line
// between consecutive entries.
func Join(entries []FileEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString(BlockSeparator)
		}
		b.WriteString(entry.Caption)
		b.WriteString(CaptionContentDivider)
		b.WriteString(entry.Content)
	}
	return b.String()
}
