package anki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameCache_RefreshReplacesAll(t *testing.T) {
	decks := `{"Default": 1, "Japanese": 1704383367722}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body.Action {
		case "deckNamesAndIds":
			fmt.Fprintf(w, `{"result": %s, "error": null}`, decks)
		case "modelNamesAndIds":
			fmt.Fprint(w, `{"result": {"Basic": 1483883011648}, "error": null}`)
		default:
			t.Errorf("unexpected action %s", body.Action)
		}
	})

	cache := NewNameCache(client)
	assert.Empty(t, cache.Decks())
	assert.Empty(t, cache.Models())

	require.NoError(t, cache.Refresh(context.Background()))
	assert.Equal(t, []string{"Default", "Japanese"}, cache.Decks())
	assert.Equal(t, []string{"Basic"}, cache.Models())

	// A refresh replaces the snapshot wholesale; removed decks disappear.
	decks = `{"Default": 1}`
	require.NoError(t, cache.RefreshDecks(context.Background()))
	assert.Equal(t, []string{"Default"}, cache.Decks())
	assert.Equal(t, []string{"Basic"}, cache.Models())
}

func TestNameCache_SnapshotsAreCopies(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": {"Default": 1}, "error": null}`)
	})

	cache := NewNameCache(client)
	require.NoError(t, cache.RefreshDecks(context.Background()))

	snapshot := cache.Decks()
	snapshot[0] = "mutated"
	assert.Equal(t, []string{"Default"}, cache.Decks())
}
