package ankimcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aramrw/anki-direct/pkg/anki"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Helper to get arguments map
func getArgs(req mcp.CallToolRequest) map[string]interface{} {
	args, ok := req.Params.Arguments.(map[string]interface{})
	if !ok {
		return make(map[string]interface{})
	}
	return args
}

// parseIDs splits a comma-separated ID list into Numbers.
func parseIDs(raw string) ([]anki.Number, error) {
	parts := strings.Split(raw, ",")
	ids := make([]anki.Number, 0, len(parts))
	for _, p := range parts {
		id, err := anki.ParseNumber(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseFields decodes a JSON object string into an ordered field mapping,
// preserving the key order of the input.
func parseFields(raw string) (*anki.Fields, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("fields must be a JSON object")
	}
	fields := anki.NewFields()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("field name must be a string")
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields.Set(key, value)
	}
	return fields, nil
}

// FindNotesTool returns the tool definition
func FindNotesTool() mcp.Tool {
	return mcp.NewTool("anki_find_notes",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Find note IDs matching an Anki search query"),
		mcp.WithString("query", mcp.Required(), mcp.Description(`Anki search query, e.g. "is:new" or "deck:Japanese"`)),
	)
}

// FindNotesHandler returns the tool handler
func FindNotesHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		query, _ := args["query"].(string)

		ids, err := client.Notes.Find(ctx, anki.RawQuery(query))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to find notes: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"noteIds": ids,
		})
	}
}

func RegisterFindNotes(s *server.MCPServer, client *anki.Client) {
	s.AddTool(FindNotesTool(), FindNotesHandler(client))
}

// NotesInfoTool returns the tool definition
func NotesInfoTool() mcp.Tool {
	return mcp.NewTool("anki_get_notes_info",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Get full details (model, tags, fields) for the given note IDs"),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated note IDs")),
	)
}

// NotesInfoHandler returns the tool handler
func NotesInfoHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		raw, _ := args["ids"].(string)

		ids, err := parseIDs(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid note IDs: %v", err)), nil
		}

		infos, err := client.Notes.Info(ctx, ids)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get notes info: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"notes": infos,
		})
	}
}

func RegisterNotesInfo(s *server.MCPServer, client *anki.Client) {
	s.AddTool(NotesInfoTool(), NotesInfoHandler(client))
}

// AddNoteTool returns the tool definition
func AddNoteTool() mcp.Tool {
	return mcp.NewTool("anki_add_note",
		mcp.WithDescription("Add a note to a deck"),
		mcp.WithString("deck", mcp.Required(), mcp.Description("Target deck name")),
		mcp.WithString("model", mcp.Required(), mcp.Description("Note type (model) name")),
		mcp.WithString("fields", mcp.Required(), mcp.Description(`Field values as a JSON object, e.g. {"Front": "犬", "Back": "dog"}`)),
		mcp.WithString("tags", mcp.Description("Comma-separated tags")),
	)
}

// AddNoteHandler returns the tool handler
func AddNoteHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		deck, _ := args["deck"].(string)
		model, _ := args["model"].(string)
		rawFields, _ := args["fields"].(string)
		rawTags, _ := args["tags"].(string)

		fields, err := parseFields(rawFields)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid fields: %v", err)), nil
		}

		builder := anki.NewNote().DeckName(deck).ModelName(model)
		for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
			builder.Field(pair.Key, pair.Value)
		}
		if rawTags != "" {
			var tags []string
			for _, t := range strings.Split(rawTags, ",") {
				tags = append(tags, strings.TrimSpace(t))
			}
			builder.Tags(tags...)
		}

		note, err := builder.Build(ctx, client)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to build note: %v", err)), nil
		}

		ids, err := client.Notes.Add(ctx, note)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to add note: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"noteIds": ids,
		})
	}
}

func RegisterAddNote(s *server.MCPServer, client *anki.Client) {
	s.AddTool(AddNoteTool(), AddNoteHandler(client))
}

// DeleteNotesTool returns the tool definition
func DeleteNotesTool() mcp.Tool {
	return mcp.NewTool("anki_delete_notes",
		mcp.WithDescription("Delete notes (and their cards) by ID"),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated note IDs")),
	)
}

// DeleteNotesHandler returns the tool handler
func DeleteNotesHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		raw, _ := args["ids"].(string)

		ids, err := parseIDs(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid note IDs: %v", err)), nil
		}

		if err := client.Notes.Delete(ctx, ids); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to delete notes: %v", err)), nil
		}
		return mcp.NewToolResultText("Notes deleted successfully"), nil
	}
}

func RegisterDeleteNotes(s *server.MCPServer, client *anki.Client) {
	s.AddTool(DeleteNotesTool(), DeleteNotesHandler(client))
}

// OpenNoteEditorTool returns the tool definition
func OpenNoteEditorTool() mcp.Tool {
	return mcp.NewTool("anki_open_note_editor",
		mcp.WithDescription("Open a note in Anki's GUI editor"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Note ID")),
	)
}

// OpenNoteEditorHandler returns the tool handler
func OpenNoteEditorHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		raw, _ := args["id"].(string)

		id, err := anki.ParseNumber(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid note ID: %v", err)), nil
		}

		if err := client.Notes.Edit(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to open note editor: %v", err)), nil
		}
		return mcp.NewToolResultText("Note editor opened successfully"), nil
	}
}

func RegisterOpenNoteEditor(s *server.MCPServer, client *anki.Client) {
	s.AddTool(OpenNoteEditorTool(), OpenNoteEditorHandler(client))
}

// ListDecksTool returns the tool definition
func ListDecksTool() mcp.Tool {
	return mcp.NewTool("anki_list_decks",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("List all decks and their IDs"),
	)
}

// ListDecksHandler returns the tool handler
func ListDecksHandler(client *anki.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		decks, err := client.Decks.NamesAndIDs(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list decks: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"decks": decks,
		})
	}
}

func RegisterListDecks(s *server.MCPServer, client *anki.Client) {
	s.AddTool(ListDecksTool(), ListDecksHandler(client))
}
