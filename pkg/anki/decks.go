package anki

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DecksService handles deck-level actions.
type DecksService struct {
	client *Client
}

type createDeckParams struct {
	Deck string `json:"deck"`
}

// NamesAndIDs returns every deck name mapped to its ID, in collection order.
func (s *DecksService) NamesAndIDs(ctx context.Context) (*orderedmap.OrderedMap[string, Number], error) {
	decks := orderedmap.New[string, Number]()
	if err := s.client.invoke(ctx, "deckNamesAndIds", nil, decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// Create makes a new empty deck and returns its ID. Creating a deck that
// already exists is a no-op on the service side.
func (s *DecksService) Create(ctx context.Context, name string) (Number, error) {
	var id Number
	if err := s.client.invoke(ctx, "createDeck", createDeckParams{Deck: name}, &id); err != nil {
		return 0, err
	}
	return id, nil
}
