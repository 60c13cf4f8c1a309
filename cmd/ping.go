package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the container engine is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("container engine is reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
