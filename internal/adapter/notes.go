package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	notesResource = restPath + "/notes"

	preferHeader         = "Prefer"
	returnRepresentation = "return=representation"
)

// SelectNotes implements [NotesAPI]: GET /rest/v1/notes with eq. filters
// and an order clause.
func (h *remoteDataService) SelectNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(filterQuery(filter)).
		SetResult(&notes).
		Get(notesResource)
	if err != nil {
		return nil, fmt.Errorf("select notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*remoteDataService.SelectNotes").Msg("backend rejected select")
		return nil, err
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// InsertNote implements [NotesAPI]: POST /rest/v1/notes returning the
// inserted row.
func (h *remoteDataService) InsertNote(ctx context.Context, note models.NewNote) (models.Note, error) {
	var inserted []models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(preferHeader, returnRepresentation).
		SetBody(note).
		SetResult(&inserted).
		Post(notesResource)
	if err != nil {
		return models.Note{}, fmt.Errorf("insert note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	if len(inserted) == 0 {
		return models.Note{}, ErrNoRecordReturned
	}
	return inserted[0], nil
}

// UpdateNote implements [NotesAPI]: PATCH /rest/v1/notes?id=eq.&user_email=eq.
func (h *remoteDataService) UpdateNote(ctx context.Context, id int64, owner string, patch models.NotePatch) ([]models.Note, error) {
	var updated []models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(preferHeader, returnRepresentation).
		SetQueryParamsFromValues(recordQuery(id, owner)).
		SetBody(patch).
		SetResult(&updated).
		Patch(notesResource)
	if err != nil {
		return nil, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteNote implements [NotesAPI]: DELETE /rest/v1/notes?id=eq.&user_email=eq.
func (h *remoteDataService) DeleteNote(ctx context.Context, id int64, owner string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(recordQuery(id, owner)).
		Delete(notesResource)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func filterQuery(filter models.NoteFilter) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_email", eq(filter.UserEmail))

	for column, value := range map[string]*bool{
		"pinned":   filter.Pinned,
		"trashed":  filter.Trashed,
		"archived": filter.Archived,
	} {
		if value != nil {
			q.Set(column, eq(strconv.FormatBool(*value)))
		}
	}

	if len(filter.Order) > 0 {
		terms := make([]string, 0, len(filter.Order))
		for _, o := range filter.Order {
			direction := "asc"
			if o.Descending {
				direction = "desc"
			}
			terms = append(terms, o.Column+"."+direction)
		}
		q.Set("order", strings.Join(terms, ","))
	}

	return q
}

func recordQuery(id int64, owner string) url.Values {
	q := url.Values{}
	q.Set("id", eq(strconv.FormatInt(id, 10)))
	q.Set("user_email", eq(owner))
	return q
}

func eq(value string) string {
	return "eq." + value
}
