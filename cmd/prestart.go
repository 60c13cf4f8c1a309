package cmd

import (
	"github.com/spf13/cobra"
)

var preStartCmd = &cobra.Command{
	Use:   "pre-start",
	Short: "Prepare the engine before an application's containers come up",
	Long: `Runs the pre-start pipeline for the application in the current
directory: frees network capacity, ensures the shared bridge network
exists, and runs the platform bootstrap if it has not completed yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := loadApp()
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return a.PreStart(cmd.Context(), application)
	},
}

func init() {
	rootCmd.AddCommand(preStartCmd)
}
