package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"call-scripter/cmd/scripter/cmd/script"
	"call-scripter/cmd/scripter/cmd/serve"
	"call-scripter/cmd/scripter/cmd/transcribe"
	"call-scripter/cmd/scripter/cmd/version"
)

var (
	Verbose    bool
	ConfigFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scripter",
	Short: "Turn recorded sales calls into call scripts",
	Long: `Turn recorded sales calls into call scripts.
- Run the HTTP relay with "scripter serve"
- Transcribe recordings from the command line with "scripter transcribe"
- Generate a script from a transcript file with "scripter script"`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(script.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "YAML config file (defaults and SCRIPTER_* env vars apply otherwise)")
}
