package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "indicatorems",
	Short: "EMS reporting and insight API server",
	Long: `Indicator EMS is a REST API server for electronics-manufacturing
business reporting. It exposes KPI dashboards, report previews,
document templates, simulated SAP table sync and upload quota
management over a single HTTP interface.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}
