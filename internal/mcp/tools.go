package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchCardsTool defines the search_cards MCP tool.
var searchCardsTool = mcp.NewTool("search_cards",
	mcp.WithDescription("Search study cards by a case-insensitive substring of the question or answer. Results are in catalog order."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for; at least the configured minimum length"),
	),
)

// getCardTool defines the get_card MCP tool.
var getCardTool = mcp.NewTool("get_card",
	mcp.WithDescription("Get one study card with its answer as plain text."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Card id, e.g. basic-3 or a project id"),
	),
)

// getProgressTool defines the get_progress MCP tool.
var getProgressTool = mcp.NewTool("get_progress",
	mcp.WithDescription("Get completion progress for every category and the bookmark count."),
)

// listBookmarksTool defines the list_bookmarks MCP tool.
var listBookmarksTool = mcp.NewTool("list_bookmarks",
	mcp.WithDescription("List bookmarked cards in the order they were bookmarked."),
)

// toggleBookmarkTool defines the toggle_bookmark MCP tool.
var toggleBookmarkTool = mcp.NewTool("toggle_bookmark",
	mcp.WithDescription("Bookmark a card, or remove its bookmark if already set."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Card id"),
	),
)

// toggleCompletedTool defines the toggle_completed MCP tool.
var toggleCompletedTool = mcp.NewTool("toggle_completed",
	mcp.WithDescription("Mark a card completed, or clear the mark if already set."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Card id"),
	),
)
