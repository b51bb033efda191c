package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/study-tracker/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing card search and progress tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tr, err := a.newTracker(context.Background(), nil, nil)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "studytracker MCP server started on stdio (db=%s, categories=%d)\n", a.cfg.DBPath(), a.catalog.Len())

		return mcpserver.NewServer(tr).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
