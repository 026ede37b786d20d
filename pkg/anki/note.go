package anki

import (
	"context"
	"net/http"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/errgroup"
)

// DuplicateScope controls where AnkiConnect checks for duplicate notes.
type DuplicateScope string

const (
	// DuplicateScopeDeck only checks the target deck.
	DuplicateScopeDeck DuplicateScope = "deck"
	// DuplicateScopeCollection checks the entire collection.
	DuplicateScopeCollection DuplicateScope = "entire-collection"
)

// NoteOptions mirrors the `options` object of addNotes.
type NoteOptions struct {
	AllowDuplicate        bool                   `json:"allowDuplicate"`
	DuplicateScope        DuplicateScope         `json:"duplicateScope,omitempty"`
	DuplicateScopeOptions *DuplicateScopeOptions `json:"duplicateScopeOptions,omitempty"`
}

// DuplicateScopeOptions narrows duplicate checking. An empty DeckName means
// the target deck is used.
type DuplicateScopeOptions struct {
	DeckName       string `json:"deckName,omitempty"`
	CheckChildren  bool   `json:"checkChildren"`
	CheckAllModels bool   `json:"checkAllModels"`
}

// Fields is an insertion-ordered name-to-value mapping. Anki field order is
// meaningful, so a plain map would scramble it on the wire.
type Fields = orderedmap.OrderedMap[string, string]

// NewFields returns an empty ordered field mapping.
func NewFields() *Fields {
	return orderedmap.New[string, string]()
}

// Note is the validated entity submitted to AnkiConnect. It is produced only
// by NoteBuilder.Build; media arrays serialize under the singular keys the
// wire expects, and optional fields that were never set are omitted entirely.
type Note struct {
	DeckName  string       `json:"deckName"`
	ModelName string       `json:"modelName"`
	Fields    *Fields      `json:"fields"`
	Options   *NoteOptions `json:"options,omitempty"`
	Tags      []string     `json:"tags,omitempty"`
	Audio     []Media      `json:"audio,omitempty"`
	Video     []Media      `json:"video,omitempty"`
	Picture   []Media      `json:"picture,omitempty"`
}

// NoteBuilder accumulates all-optional staging state for a Note. Validation
// and media resolution are deferred to Build, so no code path can observe a
// partially valid note.
type NoteBuilder struct {
	deckName  string
	modelName string
	fields    *Fields
	options   *NoteOptions
	tags      []string
	audio     []Media
	video     []Media
	picture   []Media
}

// NewNote returns an empty note builder.
func NewNote() *NoteBuilder {
	return &NoteBuilder{}
}

// DeckName sets the target deck.
func (b *NoteBuilder) DeckName(name string) *NoteBuilder {
	b.deckName = name
	return b
}

// ModelName sets the note type.
func (b *NoteBuilder) ModelName(name string) *NoteBuilder {
	b.modelName = name
	return b
}

// Field stages one field value. Staging order is the wire order.
func (b *NoteBuilder) Field(name, value string) *NoteBuilder {
	if b.fields == nil {
		b.fields = NewFields()
	}
	b.fields.Set(name, value)
	return b
}

// Tags stages the note's tags.
func (b *NoteBuilder) Tags(tags ...string) *NoteBuilder {
	b.tags = tags
	return b
}

// Options stages duplicate-handling options.
func (b *NoteBuilder) Options(opts NoteOptions) *NoteBuilder {
	b.options = &opts
	return b
}

// Audio stages audio attachments.
func (b *NoteBuilder) Audio(media ...Media) *NoteBuilder {
	b.audio = append(b.audio, media...)
	return b
}

// Video stages video attachments.
func (b *NoteBuilder) Video(media ...Media) *NoteBuilder {
	b.video = append(b.video, media...)
	return b
}

// Picture stages picture attachments.
func (b *NoteBuilder) Picture(media ...Media) *NoteBuilder {
	b.picture = append(b.picture, media...)
	return b
}

// Build validates required fields, resolves every attached media item into
// bytes, and moves the staged state into an immutable Note. Required fields
// are checked in fixed order: deckName, then modelName, then fields. Media
// items resolve concurrently; the first failure cancels the siblings and no
// Note is produced. URL downloads reuse the client's transport; a nil client
// falls back to http.DefaultClient.
func (b *NoteBuilder) Build(ctx context.Context, client *Client) (*Note, error) {
	if b.deckName == "" {
		return nil, &ValidationError{Field: "deckName"}
	}
	if b.modelName == "" {
		return nil, &ValidationError{Field: "modelName"}
	}
	if b.fields == nil || b.fields.Len() == 0 {
		return nil, &ValidationError{Field: "fields"}
	}

	httpClient := http.DefaultClient
	if client != nil {
		httpClient = client.http
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, batch := range [][]Media{b.audio, b.video, b.picture} {
		for i := range batch {
			m := &batch[i]
			g.Go(func() error {
				return m.resolveData(gctx, httpClient)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	note := &Note{
		DeckName:  b.deckName,
		ModelName: b.modelName,
		Fields:    b.fields,
		Options:   b.options,
		Tags:      b.tags,
		Audio:     b.audio,
		Video:     b.video,
		Picture:   b.picture,
	}

	// Consume the staging state so large byte buffers are owned once.
	*b = NoteBuilder{}

	return note, nil
}
