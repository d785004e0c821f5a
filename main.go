package main

import (
	"log"
	"os"
	"strings"

	"cbdump/cmd"
	"cbdump/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Get().Fatal("cbdump execution failed", zap.Error(err))
	}

	// Syncing stderr fails with "invalid argument" on pipes and some consoles.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Get().Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
