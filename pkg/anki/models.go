package anki

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ModelsService handles note-type (model) actions.
type ModelsService struct {
	client *Client
}

type modelFieldNamesParams struct {
	ModelName string `json:"modelName"`
}

// NamesAndIDs returns every model name mapped to its ID, in collection order.
func (s *ModelsService) NamesAndIDs(ctx context.Context) (*orderedmap.OrderedMap[string, Number], error) {
	models := orderedmap.New[string, Number]()
	if err := s.client.invoke(ctx, "modelNamesAndIds", nil, models); err != nil {
		return nil, err
	}
	return models, nil
}

// FieldNames returns the field names of a model in their display order.
func (s *ModelsService) FieldNames(ctx context.Context, model string) ([]string, error) {
	var names []string
	if err := s.client.invoke(ctx, "modelFieldNames", modelFieldNamesParams{ModelName: model}, &names); err != nil {
		return nil, err
	}
	return names, nil
}
