package cmd

import (
	"github.com/spf13/cobra"
)

var pruneKeep []string

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Free network capacity now",
	Long: `Runs a standalone capacity pass: when the engine sits at or above
its network ceiling, the oldest networks that are neither reserved nor
in use are removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return a.Prune(cmd.Context(), pruneKeep...)
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().StringSliceVar(&pruneKeep, "keep", nil, "application names whose default networks must survive")
}
