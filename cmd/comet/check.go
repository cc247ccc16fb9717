package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/diagfmt"
	"comet/internal/driver"
	"comet/internal/observ"
	"comet/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Run comment lint rules over a file or directory",
	Long:  `Check lexes the given file or every accepted file under the given directory and reports lint findings`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = GOMAXPROCS)")
	checkCmd.Flags().String("config", "", "path to comet.toml (default: discovered upward)")
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache for directory checks")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadCheckConfig(cmd, path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return runCheckDir(cmd, path, cfg)
	}
	return runCheckFile(cmd, path, cfg)
}

func loadCheckConfig(cmd *cobra.Command, target string) (config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return config.Load(explicit)
	}
	start := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		start = filepath.Dir(target)
	}
	cfg, _, err := config.Discover(start)
	return cfg, err
}

func runCheckFile(cmd *cobra.Command, path string, cfg config.Config) error {
	result, err := driver.Check(path, cfg, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := printBag(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	printTimings(cmd, result.Timing)

	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func runCheckDir(cmd *cobra.Command, dir string, cfg config.Config) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.Cache
	if !noCache {
		cacheDir, err := defaultCacheDir()
		if err == nil {
			// a broken cache dir degrades to uncached checks
			cache, _ = driver.NewCache(cacheDir)
		}
	}

	fileSet, results, err := driver.CheckDir(cmd.Context(), dir, cfg, maxDiagnostics(cmd), jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	failed := false
	for _, res := range results {
		if res.Bag.Len() == 0 {
			continue
		}
		if err := printBag(cmd, res.Bag, fileSet); err != nil {
			return err
		}
		if res.Bag.HasErrors() {
			failed = true
		}
	}

	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		cached := 0
		for _, res := range results {
			if res.FromCache {
				cached++
			}
		}
		fmt.Fprintf(os.Stderr, "checked %d files (%d cached)\n", len(results), cached)
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return diagfmt.JSONDiagnostics(os.Stdout, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout), Context: 2}
		diagfmt.Pretty(os.Stdout, bag, fs, opts)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printTimings(cmd *cobra.Command, report *observ.Report) {
	show, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !show || report == nil {
		return
	}
	fmt.Fprintln(os.Stderr, report.String())
}

func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "comet"), nil
}
