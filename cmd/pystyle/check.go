package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pystyle/internal/diag"
	"pystyle/internal/diagfmt"
	"pystyle/internal/driver"
	"pystyle/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Check a Python file or a directory of files",
	Long: `Check runs the style rules over one file, or over every file directly
inside a directory, and prints one line per violation.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = NumCPU)")
	checkCmd.Flags().Bool("cache", false, "cache results by file content hash")
	checkCmd.Flags().Bool("cache-clear", false, "drop all cached results before checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	clearCache, err := cmd.Flags().GetBool("cache-clear")
	if err != nil {
		return fmt.Errorf("failed to get cache-clear flag: %w", err)
	}
	if clearCache {
		cache, err := driver.OpenDiskCache("pystyle")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	opts := driver.Options{MaxDiagnostics: maxDiagnostics}
	if useCache {
		cache, err := driver.OpenDiskCache("pystyle")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		results []driver.Result
	)
	if info.IsDir() {
		fileSet, results, err = driver.CheckDir(cmd.Context(), path, opts, jobs)
	} else {
		var res driver.Result
		fileSet, res, err = driver.Check(cmd.Context(), path, opts)
		results = []driver.Result{res}
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Skipped != nil {
			fmt.Fprintf(os.Stderr, "%s: skipped: %v\n", res.Path, res.Skipped)
		}
	}

	// Merge bags in traversal order so directory output is one stream.
	merged := mergeBags(results)
	if err := render(merged, fileSet, format, cmd); err != nil {
		return err
	}

	if merged.HasAny() {
		// Violations found: exit non-zero without cobra printing an error.
		cmd.SilenceErrors = true
		return fmt.Errorf("style violations found")
	}
	return nil
}

func mergeBags(results []driver.Result) *diag.Bag {
	total := 0
	for _, res := range results {
		if res.Bag != nil {
			total += res.Bag.Len()
		}
	}
	merged := diag.NewBag(total)
	for _, res := range results {
		if res.Skipped != nil || res.Bag == nil {
			continue
		}
		for _, d := range res.Bag.Items() {
			merged.Add(d)
		}
	}
	return merged
}

func render(bag *diag.Bag, fileSet *source.FileSet, format string, cmd *cobra.Command) error {
	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fileSet)
	default:
		diagfmt.Text(os.Stdout, bag, fileSet, diagfmt.TextOpts{
			Color: useColor(cmd, os.Stdout),
		})
		return nil
	}
}
