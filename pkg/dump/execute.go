// File: pkg/dump/execute.go
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run collects the contents described by args and writes them to args.Output.
// The output file is only touched once collection has fully succeeded.
func Run(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if err := args.Validate(); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if args.Output == "" {
		return fmt.Errorf("invalid arguments: %w", ErrNoOutput)
	}

	logger.Info("Starting dump",
		zap.Strings("roots", args.Roots),
		zap.Strings("suffixes", args.Suffixes),
		zap.Bool("fullPath", args.FullPath),
		zap.Bool("ignoreReadErrors", args.IgnoreReadErrors))

	entries, err := CollectEntries(args.Params, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(entries) == 0 {
		logger.Warn("No files matched the given suffixes")
	}
	output := Join(entries)

	if err := ensureDirectory(filepath.Dir(args.Output), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeToFile(args.Output, []byte(output), 0644, logger); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("Successfully dumped files",
		zap.String("outputFile", args.Output),
		zap.Int("totalFiles", len(entries)),
		zap.Int("totalBytes", len(output)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
