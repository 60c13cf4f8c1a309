package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devharbor/netward/internal/usecase/info"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show an application's services and hostnames",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := loadApp()
		if err != nil {
			return err
		}

		report := info.BuildAppInfo(application)

		fmt.Printf("Application: %s\n", report.Name)
		for _, svc := range report.Services {
			fmt.Printf("  %s: %s\n", svc.Service, strings.Join(svc.Hostnames, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
