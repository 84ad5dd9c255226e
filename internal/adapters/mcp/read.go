package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tagvault/internal/application/commands"
	"tagvault/internal/domain"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc *Service) {
	s.AddTool(listRecordsTool(), listRecordsHandler(svc))
	s.AddTool(showRecordTool(), showRecordHandler(svc))
	s.AddTool(tagCountsTool(), tagCountsHandler(svc))
	s.AddTool(searchCaptionsTool(), searchCaptionsHandler(svc))
	s.AddTool(matchCountTool(), matchCountHandler(svc))
	s.AddTool(historyTool(), historyHandler(svc))
}

// --- list_records ---

func listRecordsTool() mcp.Tool {
	return mcp.NewTool("list_records",
		mcp.WithDescription("List catalog records with their positions and captions."),
		mcp.WithString("filter",
			mcp.Description("Filter expression: tag:X (exact tag), caption:SUB (substring), untagged, or bare text (substring). Omit to list everything."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return. Omit for all."),
		),
	)
}

func listRecordsHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		expr := domain.ParseFilter(req.GetString("filter", ""))
		limit := req.GetInt("limit", 0)
		separator := svc.catalog.Separator()

		var sb strings.Builder
		listed := 0
		for position, img := range svc.catalog.Images() {
			if !expr.Matches(img, separator) {
				continue
			}
			fmt.Fprintf(&sb, "%d  %s  %s\n", position, img.Name(), img.Caption(separator))
			listed++
			if limit > 0 && listed >= limit {
				break
			}
		}

		if listed == 0 {
			return mcp.NewToolResultText("No records."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_record ---

func showRecordTool() mcp.Tool {
	return mcp.NewTool("show_record",
		mcp.WithDescription("Show one record in full: path, dimensions, and tags with their positions."),
		mcp.WithNumber("position",
			mcp.Description("Record position"),
			mcp.Required(),
		),
	)
}

func showRecordHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		position := req.GetInt("position", -1)
		img := svc.catalog.ImageAt(position)
		if img == nil {
			return toolError(fmt.Errorf("no record at position %d (catalog has %d)",
				position, svc.catalog.Len()))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Path: %s\n", img.Path)
		if img.Dimensions != nil {
			fmt.Fprintf(&sb, "Dimensions: %dx%d\n", img.Dimensions.Width, img.Dimensions.Height)
		}
		fmt.Fprintf(&sb, "Tags (%d):\n", len(img.Tags))
		for i, tag := range img.Tags {
			fmt.Fprintf(&sb, "  %d  %s\n", i, tag)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tag_counts ---

func tagCountsTool() mcp.Tool {
	return mcp.NewTool("tag_counts",
		mcp.WithDescription("Show the tag frequency table, most frequent first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tags to return. Omit for all."),
		),
	)
}

func tagCountsHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		limit := req.GetInt("limit", 0)

		stats, err := svc.tagCounts(limit)
		if err != nil {
			return toolError(err)
		}
		if len(stats) == 0 {
			return mcp.NewToolResultText("No tags."), nil
		}

		var sb strings.Builder
		for _, s := range stats {
			fmt.Fprintf(&sb, "%6d  %s\n", s.Count, s.Tag)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search_captions ---

func searchCaptionsTool() mcp.Tool {
	return mcp.NewTool("search_captions",
		mcp.WithDescription("Search captions for a substring, case-insensitively."),
		mcp.WithString("query",
			mcp.Description("Substring to search for"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of hits to return. Omit for all."),
		),
	)
}

func searchCaptionsHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		limit := req.GetInt("limit", 0)

		hits, err := svc.searchCaptions(query, limit)
		if err != nil {
			return toolError(err)
		}
		if len(hits) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, h := range hits {
			fmt.Fprintf(&sb, "%s  %s\n", h.Path, h.Caption)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- match_count ---

func matchCountTool() mcp.Tool {
	return mcp.NewTool("match_count",
		mcp.WithDescription("Count occurrences of a text across captions."),
		mcp.WithString("text",
			mcp.Description("Text to count"),
			mcp.Required(),
		),
		mcp.WithBoolean("whole_tags",
			mcp.Description("Count whole-tag matches only, not substrings"),
		),
		mcp.WithBoolean("filtered_only",
			mcp.Description("Only count records matching the active filter"),
		),
	)
}

func matchCountHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		cmd := commands.NewMatchCountCommand(svc.catalog,
			req.GetString("text", ""),
			req.GetBool("filtered_only", false),
			req.GetBool("whole_tags", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Show undo and redo stack depths and the next restorable operations."),
	)
}

func historyHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc.mu.Lock()
		defer svc.mu.Unlock()

		var sb strings.Builder
		fmt.Fprintf(&sb, "Undo stack: %d\n", svc.catalog.UndoDepth())
		if action, ok := svc.catalog.NextUndo(); ok {
			fmt.Fprintf(&sb, "Next undo: %s\n", action)
		}
		fmt.Fprintf(&sb, "Redo stack: %d\n", svc.catalog.RedoDepth())
		if action, ok := svc.catalog.NextRedo(); ok {
			fmt.Fprintf(&sb, "Next redo: %s\n", action)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// tagCounts answers from the index when present, otherwise from the
// in-memory catalog.
func (s *Service) tagCounts(limit int) ([]domain.TagStat, error) {
	if s.index != nil {
		return s.index.TagCounts(limit)
	}

	counts := domain.CountTags(s.catalog.Images())
	stats := make([]domain.TagStat, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, domain.TagStat{Tag: tag, Count: count})
	}
	domain.SortTagStats(stats)
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// searchCaptions answers from the index when present, otherwise scans
// the in-memory catalog.
func (s *Service) searchCaptions(query string, limit int) ([]domain.SearchHit, error) {
	if s.index != nil {
		return s.index.SearchCaptions(query, limit)
	}

	lowered := strings.ToLower(query)
	separator := s.catalog.Separator()
	var hits []domain.SearchHit
	for _, img := range s.catalog.Images() {
		caption := img.Caption(separator)
		if !strings.Contains(strings.ToLower(caption), lowered) {
			continue
		}
		hits = append(hits, domain.SearchHit{Path: img.Path, Caption: caption})
		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	return hits, nil
}
