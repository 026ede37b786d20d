package anki

import (
	"context"
	"sync"
)

// NameCache is an advisory snapshot of deck and model names. Each refresh
// replaces the whole snapshot; there is no eviction and the lists carry no
// authority over what the collection actually contains.
type NameCache struct {
	client *Client

	mu     sync.RWMutex
	decks  []string
	models []string
}

// NewNameCache returns an empty cache bound to the client.
func NewNameCache(client *Client) *NameCache {
	return &NameCache{client: client}
}

// Refresh replaces both the deck and model snapshots.
func (c *NameCache) Refresh(ctx context.Context) error {
	if err := c.RefreshDecks(ctx); err != nil {
		return err
	}
	return c.RefreshModels(ctx)
}

// RefreshDecks replaces the deck name snapshot with the service's latest.
func (c *NameCache) RefreshDecks(ctx context.Context) error {
	decks, err := c.client.Decks.NamesAndIDs(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, decks.Len())
	for pair := decks.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	c.mu.Lock()
	c.decks = names
	c.mu.Unlock()
	return nil
}

// RefreshModels replaces the model name snapshot with the service's latest.
func (c *NameCache) RefreshModels(ctx context.Context) error {
	models, err := c.client.Models.NamesAndIDs(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, models.Len())
	for pair := models.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	c.mu.Lock()
	c.models = names
	c.mu.Unlock()
	return nil
}

// Decks returns a copy of the deck name snapshot.
func (c *NameCache) Decks() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.decks))
	copy(out, c.decks)
	return out
}

// Models returns a copy of the model name snapshot.
func (c *NameCache) Models() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.models))
	copy(out, c.models)
	return out
}
