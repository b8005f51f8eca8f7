package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "certgen",
	Short: "Batch certificate generator",
	Long: `certgen renders personalized certificates from a CSV roster and a
template image, then bundles them into certificates.zip.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
}
