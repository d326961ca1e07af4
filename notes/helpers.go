package notes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/notehub/notehub/internal/models"
	"github.com/notehub/notehub/internal/osutil"
)

const previewLength = 65

var unsafeFileChars = strings.NewReplacer(
	"/", "-",
	`\`, "-",
	"?", "-",
	"%", "-",
	"*", "-",
	":", "-",
	"|", "-",
	`"`, "-",
	"<", "-",
	">", "-",
)

// Preview shortens content to its first 65 characters followed by "...".
func Preview(content string) string {
	r := []rune(content)
	if len(r) <= previewLength {
		return content
	}

	return string(r[:previewLength]) + "..."
}

// FileName returns the name a note is downloaded as.
func FileName(title string) string {
	if title == "" {
		title = "note"
	}

	return unsafeFileChars.Replace(title) + ".txt"
}

// Download writes the content of n to dir and returns the file path.
func Download(n models.Note, dir string) (string, error) {
	path := filepath.Join(dir, FileName(n.Title))

	err := os.WriteFile(path, []byte(n.Content), osutil.FilePermission)
	if err != nil {
		return "", errWriteNote.Fmt(path).Wrap(err)
	}

	return path, nil
}
