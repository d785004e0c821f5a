package dump

// FileEntry is the caption and content of one matched file.
type FileEntry struct {
	Caption string // Caption prefix followed by the file path.
	Content string // File text, or a placeholder.
}

// Constants
const (
	EmptyFilePlaceholder  = "Empty file"            // Content used for empty or whitespace-only files
	ReadErrorPlaceholder  = "Could not read file: " // Prefix of the content used for undecodable files
	BlockSeparator        = "\n\n"                  // Separates consecutive entries in the output
	CaptionContentDivider = "\n\n"                  // Separates a caption from its content
)
