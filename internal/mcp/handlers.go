package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

// handleSearchCards runs a substring search over the searchable categories.
func (s *Server) handleSearchCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	if s.tracker.Search(query) == nil {
		return mcp.NewToolResultError(fmt.Sprintf("query %q is too short", query)), nil
	}
	_, results := s.tracker.LastSearch()
	if len(results) == 0 {
		return mcp.NewToolResultText("0 results."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))
	for _, c := range results {
		sb.WriteString(formatCardLine(c))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetCard returns one card with its answer reduced to plain text.
func (s *Server) handleGetCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	card, err := s.tracker.Card(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	sb.WriteString(formatCardLine(card))
	if p := card.Project; p != nil {
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("Description: %s\n", p.Description))
		}
		if p.Difficulty != "" {
			sb.WriteString(fmt.Sprintf("Difficulty: %s\n", p.Difficulty))
		}
		if len(p.Tech) > 0 {
			sb.WriteString(fmt.Sprintf("Tech: %s\n", strings.Join(p.Tech, ", ")))
		}
		for _, f := range p.Features {
			sb.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(cards.PlainText(card.AnswerHTML))
	sb.WriteString("\n")
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, p := range s.tracker.Progress() {
		sb.WriteString(fmt.Sprintf("%s: %d/%d (%d%%)\n", p.Category, p.Completed, p.Total, p.Percent))
	}
	sb.WriteString(fmt.Sprintf("bookmarks: %d\n", s.tracker.BookmarkCount()))
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleListBookmarks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bookmarks := s.tracker.Bookmarks()
	if len(bookmarks) == 0 {
		return mcp.NewToolResultText(tracker.EmptyBookmarks + "."), nil
	}
	var sb strings.Builder
	for _, c := range bookmarks {
		sb.WriteString(formatCardLine(c))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleToggleBookmark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	on, err := s.tracker.ToggleBookmark(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	if on {
		return mcp.NewToolResultText(fmt.Sprintf("%s %s", id, tracker.MsgBookmarked)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s %s", id, tracker.MsgBookmarkRemoved)), nil
}

func (s *Server) handleToggleCompleted(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	on, err := s.tracker.ToggleCompleted(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	if on {
		return mcp.NewToolResultText(fmt.Sprintf("%s marked completed.", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s no longer completed.", id)), nil
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, tracker.ErrUnknownItem) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("saving failed: %v", err))
}

// formatCardLine renders one card as "[id] #n Title (tags) [flags]".
func formatCardLine(c cards.CardView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] #%d %s", c.ID, c.NumberLabel, c.Title))
	if len(c.Tags) > 0 {
		sb.WriteString(fmt.Sprintf(" (%s)", strings.Join(c.Tags, ", ")))
	}
	if c.Completed {
		sb.WriteString(" [completed]")
	}
	if c.Bookmarked {
		sb.WriteString(" [bookmarked]")
	}
	sb.WriteString("\n")
	return sb.String()
}
