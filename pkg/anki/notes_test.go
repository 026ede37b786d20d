package anki

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_Find_EmptyResultIsValid(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": [], "error": null}`)
	})

	ids, err := client.Notes.Find(context.Background(), RawQuery("deck:empty"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestNotes_Info_EmptyResultIsNoDataFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": [], "error": null}`)
	})

	_, err := client.Notes.Info(context.Background(), []Number{12345})
	require.ErrorIs(t, err, ErrNoDataFound)
}

func TestNotes_Info_SpuriousPlaceholdersAreNoDataFound(t *testing.T) {
	// An array of nothing but empty placeholder objects sanitizes down to
	// an empty result.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": [{}, {}], "error": null}`)
	})

	_, err := client.Notes.Info(context.Background(), []Number{12345})
	require.ErrorIs(t, err, ErrNoDataFound)
}

func TestNotes_Info_DecodesFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
			Params struct {
				Notes []Number `json:"notes"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "notesInfo", body.Action)
		assert.Equal(t, []Number{1502298033753}, body.Params.Notes)

		fmt.Fprint(w, `{
			"result": [{
				"noteId": 1502298033753,
				"modelName": "Basic",
				"tags": ["vocab"],
				"fields": {
					"Front": {"value": "犬", "order": 0},
					"Back": {"value": "dog", "order": 1}
				}
			}],
			"error": null
		}`)
	})

	infos, err := client.Notes.Info(context.Background(), []Number{1502298033753})
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, Number(1502298033753), info.NoteID)
	assert.Equal(t, "Basic", info.ModelName)
	assert.Equal(t, []string{"vocab"}, info.Tags)
	assert.Equal(t, FieldData{Value: "犬", Order: 0}, info.Fields["Front"])
	assert.Equal(t, FieldData{Value: "dog", Order: 1}, info.Fields["Back"])
}

func TestNotes_Add_WireShape(t *testing.T) {
	var captured json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string          `json:"action"`
			Params json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "addNotes", body.Action)
		captured = body.Params

		fmt.Fprint(w, `{"result": [1496198395707], "error": null}`)
	})

	note, err := NewNote().
		DeckName("Japanese").
		ModelName("Basic").
		Field("Front", "犬").
		Field("Back", "dog").
		Tags("vocab").
		Audio(Media{
			Filename: "inu.mp3",
			Data:     []byte("fake mp3 bytes"),
			Fields:   []string{"Back"},
		}).
		Build(context.Background(), client)
	require.NoError(t, err)

	ids, err := client.Notes.Add(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, []Number{1496198395707}, ids)

	raw := string(captured)
	// Media arrays go under the singular keys; unset optionals are omitted.
	assert.Contains(t, raw, `"audio"`)
	assert.NotContains(t, raw, `"video"`)
	assert.NotContains(t, raw, `"picture"`)
	assert.NotContains(t, raw, `"options"`)
	assert.NotContains(t, raw, `null`)

	// data crosses the wire as base64.
	encoded := base64.StdEncoding.EncodeToString([]byte("fake mp3 bytes"))
	assert.Contains(t, raw, encoded)

	// Field order matches staging order.
	front := strings.Index(raw, `"Front"`)
	back := strings.Index(raw, `"Back":"dog"`)
	require.GreaterOrEqual(t, front, 0)
	require.GreaterOrEqual(t, back, 0)
	assert.Less(t, front, back)
}

func TestNotes_UpdateFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
			Params struct {
				Note struct {
					ID     Number            `json:"id"`
					Fields map[string]string `json:"fields"`
				} `json:"note"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "updateNoteFields", body.Action)
		assert.Equal(t, Number(1502298033753), body.Params.Note.ID)
		assert.Equal(t, map[string]string{"Back": "hound"}, body.Params.Note.Fields)

		fmt.Fprint(w, `{"result": null, "error": null}`)
	})

	fields := NewFields()
	fields.Set("Back", "hound")
	err := client.Notes.UpdateFields(context.Background(), 1502298033753, fields)
	require.NoError(t, err)
}

func TestNotes_Delete(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
			Params struct {
				Notes []Number `json:"notes"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deleteNotes", body.Action)
		assert.Equal(t, []Number{1, 2}, body.Params.Notes)

		fmt.Fprint(w, `{"result": null, "error": null}`)
	})

	require.NoError(t, client.Notes.Delete(context.Background(), []Number{1, 2}))
}

func TestNotes_Edit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
			Params struct {
				Note Number `json:"note"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "guiEditNote", body.Action)
		assert.Equal(t, Number(1749686091185), body.Params.Note)

		fmt.Fprint(w, `{"result": null, "error": null}`)
	})

	require.NoError(t, client.Notes.Edit(context.Background(), 1749686091185))
}
