package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/state"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.New(
		catalog.Category{Key: "basic", Items: []catalog.Item{
			{Title: "What is gas?", Tags: []string{"evm"}, Answer: "<p>The unit of <em>execution</em> cost.</p>"},
			{Title: "What is a block?", Answer: "<p>A batch of transactions.</p>"},
		}},
		catalog.Category{Key: "projects", Items: []catalog.Item{
			{ID: "token-swap", Title: "Build a token swap", Description: "Constant product AMM.",
				Difficulty: "intermediate", Tech: []string{"solidity"}, Features: []string{"Add liquidity"}},
		}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	tr, err := tracker.New(context.Background(), cat, state.NewStore(state.NewMemoryKV()), nil, nil, tracker.Options{})
	if err != nil {
		t.Fatalf("tracker.New: %v", err)
	}
	return NewServer(tr)
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{searchCardsTool, "search_cards"},
		{getCardTool, "get_card"},
		{getProgressTool, "get_progress"},
		{listBookmarksTool, "list_bookmarks"},
		{toggleBookmarkTool, "toggle_bookmark"},
		{toggleCompletedTool, "toggle_completed"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.tracker == nil {
		t.Fatal("tracker not set")
	}
}

func TestHandleSearchCards(t *testing.T) {
	srv := newTestServer(t)

	t.Run("match", func(t *testing.T) {
		result := call(t, srv.handleSearchCards, map[string]any{"query": "EXECUTION"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		if !strings.Contains(text, "Found 1 result(s)") || !strings.Contains(text, "[basic-0] #1 What is gas? (evm)") {
			t.Errorf("unexpected output:\n%s", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		result := call(t, srv.handleSearchCards, map[string]any{"query": "zz-not-present"})
		if result.IsError || extractText(result) != "0 results." {
			t.Errorf("unexpected result: %q", extractText(result))
		}
	})

	t.Run("too short", func(t *testing.T) {
		result := call(t, srv.handleSearchCards, map[string]any{"query": "ga"})
		if !result.IsError {
			t.Error("expected error for short query")
		}
	})

	t.Run("missing query", func(t *testing.T) {
		result := call(t, srv.handleSearchCards, map[string]any{})
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})
}

func TestHandleGetCard(t *testing.T) {
	srv := newTestServer(t)

	text := extractText(call(t, srv.handleGetCard, map[string]any{"id": "basic-0"}))
	if !strings.Contains(text, "The unit of execution cost.") || strings.Contains(text, "<em>") {
		t.Errorf("answer not reduced to text:\n%s", text)
	}

	text = extractText(call(t, srv.handleGetCard, map[string]any{"id": "token-swap"}))
	for _, want := range []string{"Difficulty: intermediate", "Tech: solidity", "- Add liquidity"} {
		if !strings.Contains(text, want) {
			t.Errorf("project card missing %q:\n%s", want, text)
		}
	}

	if result := call(t, srv.handleGetCard, map[string]any{"id": "basic-9"}); !result.IsError {
		t.Error("expected error for unknown card")
	}
}

func TestToggleTools(t *testing.T) {
	srv := newTestServer(t)

	result := call(t, srv.handleToggleBookmark, map[string]any{"id": "basic-1"})
	if text := extractText(result); text != "basic-1 Bookmarked!" {
		t.Errorf("toggle_bookmark = %q", text)
	}
	text := extractText(call(t, srv.handleListBookmarks, nil))
	if !strings.Contains(text, "[basic-1] #2 What is a block? [bookmarked]") {
		t.Errorf("list_bookmarks = %q", text)
	}

	call(t, srv.handleToggleCompleted, map[string]any{"id": "basic-0"})
	text = extractText(call(t, srv.handleGetProgress, nil))
	if !strings.Contains(text, "basic: 1/2 (50%)") || !strings.Contains(text, "bookmarks: 1") {
		t.Errorf("get_progress = %q", text)
	}

	result = call(t, srv.handleToggleBookmark, map[string]any{"id": "basic-1"})
	if text := extractText(result); text != "basic-1 Bookmark removed." {
		t.Errorf("second toggle_bookmark = %q", text)
	}
	if text := extractText(call(t, srv.handleListBookmarks, nil)); text != "No bookmarks yet." {
		t.Errorf("empty list_bookmarks = %q", text)
	}

	if result := call(t, srv.handleToggleCompleted, map[string]any{"id": "nope"}); !result.IsError {
		t.Error("expected error for unknown id")
	}
}
