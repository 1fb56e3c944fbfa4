package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-prism/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Prism - structural project extraction",
	Long: `Prism scans a project tree and distills it into a structural model:
per-file imports, classes, functions, and auxiliary records extracted by
lexical per-language rules, plus config and documentation classification.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .prism.yml in the scan root)")
}

// loadConfig loads configuration for a scan rooted at rootDir. An explicit
// --config path wins over discovery in the root.
func loadConfig(rootDir string) (*config.Config, error) {
	if cfgFile != "" {
		return config.NewFileLoader(cfgFile).Load()
	}
	return config.NewLoader(rootDir).Load()
}
