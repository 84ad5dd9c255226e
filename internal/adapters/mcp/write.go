package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tagvault/internal/application/commands"
	"tagvault/internal/domain"
)

// RegisterWriteTools adds all mutating catalog tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, svc *Service) {
	s.AddTool(addTagsTool(), addTagsHandler(svc))
	s.AddTool(renameTagTool(), renameTagHandler(svc))
	s.AddTool(deleteTagTool(), deleteTagHandler(svc))
	s.AddTool(findReplaceTool(), findReplaceHandler(svc))
	s.AddTool(sortTagsTool(), sortTagsHandler(svc))
	s.AddTool(shuffleTagsTool(), shuffleTagsHandler(svc))
	s.AddTool(removeDuplicatesTool(), removeDuplicatesHandler(svc))
	s.AddTool(removeEmptyTool(), removeEmptyHandler(svc))
	s.AddTool(setCaptionTool(), setCaptionHandler(svc))
	s.AddTool(undoTool(), undoHandler(svc))
	s.AddTool(redoTool(), redoHandler(svc))
	s.AddTool(reloadTool(), reloadHandler(svc))
}

// --- add_tags ---

func addTagsTool() mcp.Tool {
	return mcp.NewTool("add_tags",
		mcp.WithDescription("Add one or more tags to records. Tags a record already has are not duplicated."),
		mcp.WithString("tags",
			mcp.Description("Tags to add, separated by the catalog separator (e.g. \"cat, cute\")"),
			mcp.Required(),
		),
		mcp.WithString("positions",
			mcp.Description("Comma-separated record positions (e.g. \"0,2,5\"). Omit to target every record."),
		),
	)
}

func addTagsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		tags := domain.ParseCaption(req.GetString("tags", ""), svc.catalog.Separator())
		positions, err := parsePositions(req.GetString("positions", ""), svc.catalog.Len())
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewAddTagsCommand(svc.catalog, tags, positions)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_tag ---

func renameTagTool() mcp.Tool {
	return mcp.NewTool("rename_tag",
		mcp.WithDescription("Rename every occurrence of a tag across the catalog."),
		mcp.WithString("old_tag",
			mcp.Description("Tag to rename"),
			mcp.Required(),
		),
		mcp.WithString("new_tag",
			mcp.Description("Replacement tag"),
			mcp.Required(),
		),
		mcp.WithBoolean("filtered_only",
			mcp.Description("Only touch records matching the active filter"),
		),
	)
}

func renameTagHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewRenameTagCommand(svc.catalog,
			req.GetString("old_tag", ""),
			req.GetString("new_tag", ""),
			req.GetBool("filtered_only", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_tag ---

func deleteTagTool() mcp.Tool {
	return mcp.NewTool("delete_tag",
		mcp.WithDescription("Delete every occurrence of a tag across the catalog."),
		mcp.WithString("tag",
			mcp.Description("Tag to delete"),
			mcp.Required(),
		),
		mcp.WithBoolean("filtered_only",
			mcp.Description("Only touch records matching the active filter"),
		),
	)
}

func deleteTagHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewDeleteTagCommand(svc.catalog,
			req.GetString("tag", ""),
			req.GetBool("filtered_only", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- find_and_replace ---

func findReplaceTool() mcp.Tool {
	return mcp.NewTool("find_and_replace",
		mcp.WithDescription("Replace text inside captions. The match may span tag boundaries; captions are re-split afterwards."),
		mcp.WithString("find_text",
			mcp.Description("Text to find"),
			mcp.Required(),
		),
		mcp.WithString("replace_text",
			mcp.Description("Replacement text. Empty deletes the match."),
		),
		mcp.WithBoolean("filtered_only",
			mcp.Description("Only touch records matching the active filter"),
		),
	)
}

func findReplaceHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewFindReplaceCommand(svc.catalog,
			req.GetString("find_text", ""),
			req.GetString("replace_text", ""),
			req.GetBool("filtered_only", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sort_tags ---

func sortTagsTool() mcp.Tool {
	return mcp.NewTool("sort_tags",
		mcp.WithDescription("Sort every record's tags alphabetically or by catalog-wide frequency."),
		mcp.WithString("order",
			mcp.Description("Sort order: \"alphabetical\" (default) or \"frequency\""),
		),
		mcp.WithBoolean("keep_first",
			mcp.Description("Keep each record's first tag in place"),
		),
	)
}

func sortTagsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		order := req.GetString("order", commands.SortAlphabetical)
		cmd := commands.NewSortTagsCommand(svc.catalog, order, req.GetBool("keep_first", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- shuffle_tags ---

func shuffleTagsTool() mcp.Tool {
	return mcp.NewTool("shuffle_tags",
		mcp.WithDescription("Shuffle every record's tag order randomly."),
		mcp.WithBoolean("keep_first",
			mcp.Description("Keep each record's first tag in place"),
		),
	)
}

func shuffleTagsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewShuffleTagsCommand(svc.catalog, req.GetBool("keep_first", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_duplicate_tags ---

func removeDuplicatesTool() mcp.Tool {
	return mcp.NewTool("remove_duplicate_tags",
		mcp.WithDescription("Remove duplicate tags from every record, keeping first occurrences."),
	)
}

func removeDuplicatesHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewRemoveDuplicatesCommand(svc.catalog)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_empty_tags ---

func removeEmptyTool() mcp.Tool {
	return mcp.NewTool("remove_empty_tags",
		mcp.WithDescription("Remove empty and whitespace-only tags from every record."),
	)
}

func removeEmptyHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewRemoveEmptyCommand(svc.catalog)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_caption ---

func setCaptionTool() mcp.Tool {
	return mcp.NewTool("set_caption",
		mcp.WithDescription("Replace one record's caption outright. Not undoable."),
		mcp.WithNumber("position",
			mcp.Description("Record position"),
			mcp.Required(),
		),
		mcp.WithString("caption",
			mcp.Description("New caption, tags separated by the catalog separator. Empty clears the record."),
		),
	)
}

func setCaptionHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewSetCaptionCommand(svc.catalog,
			req.GetInt("position", -1),
			req.GetString("caption", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- undo ---

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Undo the most recent bulk tag operation. Applies without a confirmation prompt."),
	)
}

func undoHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		change, err := svc.catalog.Undo()
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Undid %q (%d records restored)",
			change.Action, change.Changed)), nil
	}
}

// --- redo ---

func redoTool() mcp.Tool {
	return mcp.NewTool("redo",
		mcp.WithDescription("Redo the most recently undone bulk tag operation. Applies without a confirmation prompt."),
	)
}

func redoHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		change, err := svc.catalog.Redo()
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Redid %q (%d records restored)",
			change.Action, change.Changed)), nil
	}
}

// --- reload ---

func reloadTool() mcp.Tool {
	return mcp.NewTool("reload",
		mcp.WithDescription("Rescan the catalog directory and reload every record. Clears undo and redo history."),
	)
}

func reloadHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		count, err := svc.reload()
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Loaded %d records", count)), nil
	}
}

// --- helpers ---

// parsePositions parses a comma-separated position list. An empty list
// means every record.
func parsePositions(s string, count int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		positions := make([]int, count)
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	}

	var positions []int
	for _, part := range strings.Split(s, ",") {
		pos, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", part)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
