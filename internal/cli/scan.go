package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/classver/classver/internal/config"
	"github.com/classver/classver/internal/reflection"
	"github.com/classver/classver/internal/scanner"
)

var (
	filterFlag []string
	outputFlag string
	indentFlag int
	quietFlag  bool
	watchFlag  bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract a class-shape snapshot from the current directory",
	Long: `Scan parses the C/C++ sources under the current directory, accumulates one
reflection database for the whole run, and serializes it to the configured
output sink.

Examples:
  # Scan the current directory and print the snapshot
  classver scan

  # Keep only classes whose qualified name contains a substring
  classver scan --filter MyLib:: --filter Proto

  # Write the snapshot to a file
  classver scan -o snapshot.txt

  # Rescan whenever a source file changes
  classver scan -o snapshot.txt --watch
`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringArrayVarP(&filterFlag, "filter", "f", nil, "Keep only classes whose qualified name contains this substring (repeatable)")
	scanCmd.Flags().StringVarP(&outputFlag, "output", "o", "", `Output sink: "-" for stdout or a file path (default from config)`)
	scanCmd.Flags().IntVar(&indentFlag, "indent", -1, "Base indentation of the serialized snapshot (default from config)")
	scanCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	scanCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and rescan")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling scan...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.LoadConfigFromFile(cfgFile)
	} else {
		cfg, err = config.LoadConfigFromDir(rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override config file and environment values.
	if len(filterFlag) > 0 {
		cfg.Filter.Patterns = filterFlag
	}
	if outputFlag != "" {
		cfg.Output.Path = outputFlag
	}
	if indentFlag >= 0 {
		cfg.Output.Indent = indentFlag
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Progress output is noise when the snapshot itself goes to the terminal.
	quiet := quietFlag || cfg.Output.Path == scanner.StdoutPath

	if err := scanOnce(ctx, rootDir, cfg, quiet); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	w, err := scanner.NewWatcher(rootDir, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	if !quiet {
		log.Println("Watching for changes...")
	}

	err = w.Watch(ctx, func() {
		if err := scanOnce(ctx, rootDir, cfg, quiet); err != nil {
			log.Printf("Rescan failed: %v", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// scanOnce runs the full pipeline: scan into a fresh database, serialize,
// write to the sink.
func scanOnce(ctx context.Context, rootDir string, cfg *config.Config, quiet bool) error {
	progress := NewCLIProgressReporter(quiet)

	s := scanner.New(rootDir, cfg, progress)
	s.SetVerbose(verbose)

	db, stats, err := s.Scan(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("scan cancelled")
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	text := reflection.Serialize(db, cfg.Output.Indent)
	if err := scanner.WriteOutput(cfg.Output.Path, text); err != nil {
		return err
	}

	// The reporter already printed the summary in non-quiet mode; with a
	// silenced reporter this is the run's single stats line.
	if quiet {
		fmt.Fprintf(os.Stderr, "Scan complete: %d classes, %d fields in %.2fs\n",
			stats.TotalClasses, stats.TotalFields, stats.ProcessingTimeSeconds)
	}

	return nil
}
