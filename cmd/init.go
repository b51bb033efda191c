package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize studytracker configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that locates your catalog files and writes a .studytracker.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
