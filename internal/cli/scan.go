package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-prism/internal/detect"
	"github.com/mvp-joe/project-prism/internal/extractor"
)

var (
	quietFlag     bool
	jsonFlag      bool
	gitignoreFlag bool
	workersFlag   int
	maxDepthFlag  int
	excludeDirs   []string
	excludeFiles  []string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Extract a structural model from a project tree",
	Long: `Scan walks a project tree, analyzes every recognized source file with
per-language extraction rules, and builds a structural model of the project.

The scanner:
  - Prunes excluded directories without descending into them
  - Detects languages by file extension (Python, JavaScript, TypeScript,
    Kotlin, Swift, PHP, C, C++)
  - Extracts imports, classes, functions, and auxiliary records
  - Captures configuration files and documentation paths
  - Merges results deterministically regardless of worker count

Examples:
  # Scan the current directory and print a summary
  prism scan

  # Scan a specific directory
  prism scan /path/to/project

  # Print the full structural model as JSON
  prism scan --json > model.json

  # Scan with extra exclusions and the root .gitignore honored
  prism scan --exclude-dir coverage --exclude-file '*.min.js' --gitignore
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	scanCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the full model as JSON instead of a summary")
	scanCmd.Flags().BoolVar(&gitignoreFlag, "gitignore", false, "Also skip files matched by the root .gitignore")
	scanCmd.Flags().IntVar(&workersFlag, "workers", 0, "Analysis workers (0 means one per CPU)")
	scanCmd.Flags().IntVar(&maxDepthFlag, "max-depth", 0, "Traversal depth limit (0 means unlimited)")
	scanCmd.Flags().StringArrayVar(&excludeDirs, "exclude-dir", nil, "Additional directory name to prune (repeatable)")
	scanCmd.Flags().StringArrayVar(&excludeFiles, "exclude-file", nil, "Additional file name pattern to skip (repeatable)")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling scan...")
		cancel()
	}()

	rootDir := "."
	if len(args) > 0 {
		rootDir = args[0]
	}

	// Load configuration from .prism.yml (or the --config file)
	cfg, err := loadConfig(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := cfg.ExtractorOptions()
	applyScanFlags(cmd, &opts)

	// Progress bars would corrupt piped JSON, so --json implies quiet
	progress := NewScanProgressReporter(quietFlag || jsonFlag)
	opts.Progress = progress

	ext, err := extractor.New(rootDir, opts)
	if err != nil {
		return err
	}
	defer ext.Close()

	model, stats, err := ext.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("scan cancelled")
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	kind := detect.Project(model.Root)
	model.ProjectKind = kind.Tag

	if jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	}

	printSummary(model, stats, kind)
	return nil
}

// applyScanFlags overlays explicitly set flags on the loaded configuration.
// Unset flags leave config values alone, so --workers 0 still forces the
// per-CPU default while an absent flag keeps whatever .prism.yml said.
func applyScanFlags(cmd *cobra.Command, opts *extractor.Options) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		opts.Workers = workersFlag
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth = maxDepthFlag
	}
	if flags.Changed("gitignore") {
		opts.RespectGitignore = gitignoreFlag
	}
	opts.IgnoredDirs = append(opts.IgnoredDirs, excludeDirs...)
	opts.IgnoredFiles = append(opts.IgnoredFiles, excludeFiles...)
}

func printSummary(model *extractor.StructuralModel, stats *extractor.Stats, kind detect.Kind) {
	fmt.Println()
	fmt.Printf("✓ Scan complete: %s files in %.2fs\n", formatNumber(stats.FilesDiscovered), stats.Duration.Seconds())
	fmt.Printf("  Project kind: %s\n", kind.Description)
	fmt.Printf("  Analyzed:     %s code, %d config, %d docs (%d skipped)\n",
		formatNumber(stats.FilesAnalyzed), stats.ConfigFiles, stats.DocFiles, stats.FilesSkipped)
	fmt.Printf("  Records:      %s (%d imports, %d classes, %d functions)\n",
		formatNumber(stats.Records), len(model.Imports), len(model.Classes), len(model.Functions))
	fmt.Printf("  Dependencies: %d\n", stats.Dependencies)
	if stats.CacheHits > 0 {
		fmt.Printf("  Cache hits:   %d\n", stats.CacheHits)
	}

	if top := topDependencies(model, 5); len(top) > 0 {
		fmt.Println("  Top dependencies:")
		for _, d := range top {
			fmt.Printf("    %s (%d)\n", d.module, d.count)
		}
	}
}

type depCount struct {
	module string
	count  int
}

// topDependencies ranks distinct dependencies by how often they are imported
// across the tree. Ties keep first-occurrence order, so the ranking is
// deterministic for a given tree.
func topDependencies(model *extractor.StructuralModel, n int) []depCount {
	counts := make(map[string]int, model.Dependencies.Len())
	for _, imp := range model.Imports {
		counts[imp.Module]++
	}

	ranked := make([]depCount, 0, model.Dependencies.Len())
	for _, module := range model.Dependencies.List() {
		ranked = append(ranked, depCount{module: module, count: counts[module]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	// Simple implementation for thousands/millions
	str := fmt.Sprintf("%d", n)
	var result string
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
