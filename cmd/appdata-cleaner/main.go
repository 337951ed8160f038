package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ham-zax/AppData-Cleaner/internal/apps"
	"github.com/ham-zax/AppData-Cleaner/internal/cleaner"
	"github.com/ham-zax/AppData-Cleaner/internal/config"
	"github.com/ham-zax/AppData-Cleaner/internal/platform"
	"github.com/ham-zax/AppData-Cleaner/internal/reporter"
	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
	"github.com/ham-zax/AppData-Cleaner/internal/session"
	"github.com/ham-zax/AppData-Cleaner/internal/ui"
	"github.com/ham-zax/AppData-Cleaner/pkg/utils"
)

var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	minSize    string
	whitelist  []string
	rootPaths  []string
	auto       bool
	workers    int
	outputFmt  string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "appdata-cleaner",
	Short: "Find and remove orphaned application data",
	Long: `appdata-cleaner scans per-user application data directories, matches each
entry against the installed applications, and offers the leftovers of
uninstalled software for review and deletion.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan data directories and report what was found",
	Long:  `Scans the data directories and classifies every entry without making any changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		candidates, err := runScan(cfg)
		if err != nil {
			return err
		}

		rptr := reporter.New(os.Stdout, parseFormat(outputFmt))
		if err := rptr.Candidates(candidates); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Scan, review and delete orphaned data",
	Long: `Scans the data directories, lets you review the orphans found, and deletes
the ones you confirm. With --auto the review step is skipped and every
orphan is deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("auto") {
			cfg.Auto = auto
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}

		candidates, err := runScan(cfg)
		if err != nil {
			return err
		}

		orphans := scanner.Dedup(scanner.Orphans(candidates))
		if len(orphans) == 0 {
			fmt.Println("No orphaned data found.")
			return nil
		}

		fmt.Printf("Found %d orphaned directories (%s).\n",
			len(orphans), utils.FormatBytes(scanner.TotalSize(orphans)))

		var doomed []scanner.Candidate
		if cfg.Auto {
			st := session.Unattended(orphans)
			doomed = st.Deletion
		} else {
			if !stdioIsTerminal() {
				return errors.New("interactive review needs a terminal; use --auto for unattended runs")
			}
			doomed, err = ui.Run(orphans)
			if err != nil {
				return err
			}
		}

		if len(doomed) == 0 {
			fmt.Println("Nothing selected; nothing was deleted.")
			return nil
		}

		unlock, err := acquireLock()
		if err != nil {
			return err
		}
		defer unlock()

		exec := cleaner.New(cfg.Workers)
		result := exec.Execute(doomed)

		rptr := reporter.New(os.Stdout, parseFormat(outputFmt))
		if err := rptr.Outcome(&result); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := configPath
		if cfgPath == "" {
			var err error
			cfgPath, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		minBytes, _ := cfg.MinSizeBytes()
		fmt.Printf("Minimum size:  %s\n", utils.FormatBytes(minBytes))
		fmt.Printf("Workers:       %d\n", cfg.Workers)
		fmt.Printf("Auto mode:     %v\n", cfg.Auto)
		fmt.Printf("Whitelist:     %d extra entries\n", len(cfg.Whitelist))
		for _, r := range resolveRoots(cfg) {
			fmt.Printf("Root:          %s (%s)\n", r.Path, r.Label)
		}
		return nil
	},
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if minSize != "" {
		cfg.MinSize = minSize
	}
	if len(whitelist) > 0 {
		cfg.Whitelist = append(cfg.Whitelist, whitelist...)
	}
	for _, p := range rootPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid root %q: %w", p, err)
		}
		cfg.Roots = append(cfg.Roots, config.RootConfig{Path: abs})
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveRoots returns the configured roots, falling back to the platform
// defaults when none are configured.
func resolveRoots(cfg *config.Config) []platform.Root {
	if len(cfg.Roots) > 0 {
		roots := make([]platform.Root, 0, len(cfg.Roots))
		for _, r := range cfg.Roots {
			label := r.Label
			if label == "" {
				label = filepath.Base(r.Path)
			}
			roots = append(roots, platform.Root{Path: r.Path, Label: label})
		}
		return roots
	}

	info, err := platform.GetInfo()
	if err != nil {
		return nil
	}
	return info.Roots
}

// runScan builds the classifier from configuration and scans all roots.
func runScan(cfg *config.Config) ([]scanner.Candidate, error) {
	roots := resolveRoots(cfg)

	installed, err := apps.InstalledNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not enumerate installed applications: %v\n", err)
	}
	if cfg.Verbose {
		fmt.Printf("Installed applications: %d\n", len(installed))
	}

	minBytes, err := cfg.MinSizeBytes()
	if err != nil {
		return nil, err
	}

	wl := scanner.NewWhitelist(config.BaselineWhitelist(), cfg.Whitelist)
	classifier := scanner.NewClassifier(wl, minBytes, installed)

	scn := scanner.New(classifier)
	if cfg.Verbose {
		scn.SetProgress(func(location, path string, scanned int) {
			fmt.Printf("  [%s] %s (%d scanned)\n", location, path, scanned)
		})
	}

	fmt.Println("Scanning data directories...")
	candidates, err := scn.Scan(roots)
	if err != nil {
		if errors.Is(err, scanner.ErrNoRoots) {
			return nil, fmt.Errorf("%w: configure roots or run on a supported platform", err)
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return candidates, nil
}

// acquireLock takes the single-instance lock held for the deletion phase.
func acquireLock() (func(), error) {
	lockPath, err := config.GetLockPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare lock directory: %w", err)
	}

	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another appdata-cleaner instance is deleting; try again later")
	}
	return func() { _ = fl.Unlock() }, nil
}

func stdioIsTerminal() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}

func parseFormat(name string) reporter.OutputFormat {
	switch name {
	case "json":
		return reporter.FormatJSON
	case "yaml":
		return reporter.FormatYAML
	case "table":
		return reporter.FormatTable
	default:
		return reporter.FormatSummary
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&minSize, "min-size", "", "ignore directories smaller than this (e.g. 10MB)")
	rootCmd.PersistentFlags().StringSliceVar(&whitelist, "whitelist", nil, "extra directory names to protect")
	rootCmd.PersistentFlags().StringSliceVar(&rootPaths, "roots", nil, "scan these directories instead of the platform defaults")

	scanCmd.Flags().StringVar(&outputFmt, "output", "summary", "output format (summary, table, json, yaml)")

	cleanCmd.Flags().BoolVar(&auto, "auto", false, "delete every orphan without interactive review")
	cleanCmd.Flags().IntVar(&workers, "workers", cleaner.DefaultWorkers, "parallel deletion workers")
	cleanCmd.Flags().StringVar(&outputFmt, "output", "summary", "output format (summary, table, json, yaml)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
}
