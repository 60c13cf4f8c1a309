package cmd

import (
	"github.com/spf13/cobra"
)

var postStartCmd = &cobra.Command{
	Use:   "post-start",
	Short: "Attach running containers to the shared bridge network",
	Long: `Runs the post-start pipeline for the application in the current
directory: every running container is attached to the shared bridge
under <service>.<app>.internal plus its declared proxy hostnames.`,
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

		return a.PostStart(cmd.Context(), application)
	},
}

func init() {
	rootCmd.AddCommand(postStartCmd)
}
