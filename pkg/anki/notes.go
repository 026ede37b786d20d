package anki

import "context"

// NotesService handles note-level actions.
type NotesService struct {
	client *Client
}

type findNotesParams struct {
	Query string `json:"query"`
}

type noteIDsParams struct {
	Notes []Number `json:"notes"`
}

type addNotesParams struct {
	Notes []*Note `json:"notes"`
}

type guiEditNoteParams struct {
	Note Number `json:"note"`
}

type updateNoteFieldsParams struct {
	Note noteFieldsUpdate `json:"note"`
}

type noteFieldsUpdate struct {
	ID     Number  `json:"id"`
	Fields *Fields `json:"fields"`
}

// FieldData is one field of an existing note as reported by notesInfo.
type FieldData struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// NoteInfo describes an existing note.
type NoteInfo struct {
	NoteID    Number               `json:"noteId"`
	ModelName string               `json:"modelName"`
	Tags      []string             `json:"tags"`
	Fields    map[string]FieldData `json:"fields"`
}

// Find returns the IDs of notes matching the query. An empty result is a
// valid empty match set, not an error.
func (s *NotesService) Find(ctx context.Context, query Query) ([]Number, error) {
	var ids []Number
	if err := s.client.invoke(ctx, "findNotes", findNotesParams{Query: query.String()}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Info fetches full details for the given note IDs. An empty result means
// none of the IDs exist, which is ErrNoDataFound.
func (s *NotesService) Info(ctx context.Context, ids []Number) ([]NoteInfo, error) {
	var infos []NoteInfo
	if err := s.client.invoke(ctx, "notesInfo", noteIDsParams{Notes: ids}, &infos); err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, ErrNoDataFound
	}
	return infos, nil
}

// Add creates the given notes and returns their new IDs.
func (s *NotesService) Add(ctx context.Context, notes ...*Note) ([]Number, error) {
	var ids []Number
	if err := s.client.invoke(ctx, "addNotes", addNotesParams{Notes: notes}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateFields replaces the field values of an existing note.
func (s *NotesService) UpdateFields(ctx context.Context, id Number, fields *Fields) error {
	params := updateNoteFieldsParams{Note: noteFieldsUpdate{ID: id, Fields: fields}}
	return s.client.invoke(ctx, "updateNoteFields", params, nil)
}

// Delete removes the given notes and their cards.
func (s *NotesService) Delete(ctx context.Context, ids []Number) error {
	return s.client.invoke(ctx, "deleteNotes", noteIDsParams{Notes: ids}, nil)
}

// Edit opens the note in Anki's GUI editor.
func (s *NotesService) Edit(ctx context.Context, id Number) error {
	return s.client.invoke(ctx, "guiEditNote", guiEditNoteParams{Note: id}, nil)
}
