package app

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/maruel/natural"

	"github.com/notehub/notehub/internal/models"
	"github.com/notehub/notehub/internal/ui"
	"github.com/notehub/notehub/notes"
)

const (
	sortTitle    = "title"
	sortModified = "modified"

	dateFormat = "Jan 02, 2006 03:04 PM"
)

const noNotesMsg = "No notes found"

// sortNotes orders notes in place. Titles are compared naturally so that
// "Day 2" comes before "Day 10"; modified puts the most recent first.
func sortNotes(list []models.Note, by string) error {
	switch by {
	case sortTitle:
		slices.SortStableFunc(list, func(a, b models.Note) int {
			switch {
			case natural.Less(a.Title, b.Title):
				return -1
			case natural.Less(b.Title, a.Title):
				return 1
			default:
				return 0
			}
		})
	case sortModified, "":
		slices.SortStableFunc(list, func(a, b models.Note) int {
			return b.Modified().Compare(a.Modified())
		})
	default:
		return errUnknownSort.Fmt(by)
	}

	return nil
}

// parseSince understands absolute dates as well as relative ones such as
// "2 days ago", resolved against now.
func parseSince(value string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, value)
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(value).Wrap(err)
	}

	return d.Time, nil
}

// filterSince keeps the notes modified at or after since.
func filterSince(list []models.Note, since time.Time) []models.Note {
	return slices.DeleteFunc(list, func(n models.Note) bool {
		return n.Modified().Before(since)
	})
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Local().Format(dateFormat)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// printNotesTable prints a table of notes to w.
func printNotesTable(w io.Writer, list []models.Note) {
	tableBody := make([][]string, len(list))

	for i, n := range list {
		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			ui.Cyan(n.ID),
			n.Title,
			notes.Preview(singleLine(n.Content)),
			formatDate(n.Modified()),
		}
	}

	tableBody = append([][]string{
		{"#", "ID", "TITLE", "PREVIEW", "MODIFIED"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}
