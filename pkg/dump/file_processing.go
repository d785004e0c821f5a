package dump

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// ProcessSingleFile reads one matched file and builds its entry.
// root is the cleaned root directory the file was found under.
func ProcessSingleFile(filePath, root string, params Params, logger *zap.Logger) (FileEntry, error) {
	logger.Debug("Processing file", zap.String("filePath", filePath), zap.String("root", root))

	content, err := readContent(filePath, params.IgnoreReadErrors, logger)
	if err != nil {
		return FileEntry{}, err
	}

	return FileEntry{
		Caption: params.CaptionPrefix + captionPath(filePath, root, params.FullPath, logger),
		Content: content,
	}, nil
}

// readContent returns the text to emit for a file. Decode failures become a
// placeholder when ignoreErrors is set; open and read failures never do.
func readContent(filePath string, ignoreErrors bool, logger *zap.Logger) (string, error) {
	data, err := readFileBytes(filePath)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", filePath), zap.Error(err))
		return "", fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	text, err := decodeText(data)
	if err != nil {
		if ignoreErrors {
			logger.Warn("File is not valid text, using placeholder",
				zap.String("filePath", filePath),
				zap.Error(err))
			return ReadErrorPlaceholder + err.Error(), nil
		}
		logger.Error("File is not valid text", zap.String("filePath", filePath), zap.Error(err))
		return "", &ReadError{Path: filePath, Err: err}
	}

	if isBlank(text) {
		logger.Debug("File is empty or whitespace only", zap.String("filePath", filePath), zap.Int("sizeBytes", len(data)))
		return EmptyFilePlaceholder, nil
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(data)))
	return text, nil
}

// captionPath returns the path shown in a caption: the walked path in full
// path mode, otherwise the path relative to the root's parent directory.
func captionPath(filePath, root string, fullPath bool, logger *zap.Logger) string {
	if fullPath {
		return filepath.ToSlash(filePath)
	}

	parent := filepath.Dir(root)
	relativePath, err := filepath.Rel(parent, filePath)
	if err != nil {
		logger.Warn("Unable to determine relative path, using walked path",
			zap.String("filePath", filePath),
			zap.String("parentDir", parent),
			zap.Error(err))
		relativePath = filePath
	}
	return filepath.ToSlash(relativePath)
}
