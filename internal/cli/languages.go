package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long:  `Print every language prism can analyze, with its file extensions and the number of extraction passes that run over it.`,
	Run: func(cmd *cobra.Command, args []string) {
		registry := analyzers.DefaultRegistry()
		fmt.Printf("%-12s %-22s %s\n", "LANGUAGE", "EXTENSIONS", "PATTERNS")
		for _, lang := range registry.Languages() {
			exts := strings.Join(analyzers.Extensions(lang), " ")
			fmt.Printf("%-12s %-22s %d\n", lang, exts, analyzers.PatternCount(lang))
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
