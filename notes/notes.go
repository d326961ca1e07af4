package notes

import (
	"context"
	"net/http"
	"net/url"

	"github.com/notehub/notehub/internal/models"
)

type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func notePath(id string) string {
	return pathNotes + "/" + url.PathEscape(id)
}

// List returns the notes of the logged in user.
func (c *Client) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	err := c.do(ctx, http.MethodGet, pathNotes, nil, &notes, "failed to fetch notes")
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Find returns the note with the given ID.
func (c *Client) Find(ctx context.Context, id string) (models.Note, error) {
	notes, err := c.List(ctx)
	if err != nil {
		return models.Note{}, err
	}

	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}

	return models.Note{}, ErrNoteNotFound.Fmt(id)
}

// Create adds a note.
func (c *Client) Create(ctx context.Context, title, content string) (models.Note, error) {
	var n models.Note

	err := c.do(
		ctx,
		http.MethodPost,
		pathNotes,
		noteBody{Title: title, Content: content},
		&n,
		"create failed",
	)

	return n, err
}

// Update replaces the title and content of a note.
func (c *Client) Update(
	ctx context.Context,
	id, title, content string,
) (models.Note, error) {
	var n models.Note

	err := c.do(
		ctx,
		http.MethodPut,
		notePath(id),
		noteBody{Title: title, Content: content},
		&n,
		"update failed",
	)

	return n, err
}

// Save updates the note with the given ID, or creates one when id is empty.
func (c *Client) Save(
	ctx context.Context,
	id, title, content string,
) (models.Note, error) {
	if id == "" {
		return c.Create(ctx, title, content)
	}

	return c.Update(ctx, id, title, content)
}

// Delete removes a note.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, notePath(id), nil, nil, "delete failed")
}
