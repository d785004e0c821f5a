// File: pkg/dump/config.go
package dump

import (
	"strings"
)

// DefaultCaptionPrefix is prepended to every caption unless the caller overrides it.
const DefaultCaptionPrefix = "FILE "

// Params holds the job parameters for a single collection run.
type Params struct {
	Roots            []string // Root directories to scan, in output order.
	Suffixes         []string // File-name suffixes to include (e.g. ".go", ".md").
	CaptionPrefix    string   // Text placed directly before each caption path.
	FullPath         bool     // If true, captions keep the path as walked instead of trimming the root's parent.
	IgnoreReadErrors bool     // If true, undecodable files get a placeholder instead of aborting the run.
}

// Arguments holds the configuration options for a dump invocation.
type Arguments struct {
	Params
	Output string // Destination path for the concatenated output file.
}

// Validate reports whether the parameters describe a runnable job.
func (p Params) Validate() error {
	if len(p.Roots) == 0 {
		return ErrNoRoots
	}
	if len(p.Suffixes) == 0 {
		return ErrNoSuffixes
	}
	return nil
}

// ParseList splits a comma-separated list, trimming whitespace around each
// entry and dropping entries that are empty after trimming.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
