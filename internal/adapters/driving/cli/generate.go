package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/pybay/runsheet-cli/internal/adapters/driven/config/file"
	"github.com/pybay/runsheet-cli/internal/adapters/driven/excel"
	"github.com/pybay/runsheet-cli/internal/adapters/driven/imagecache"
	"github.com/pybay/runsheet-cli/internal/core/services"
	"github.com/pybay/runsheet-cli/internal/logger"
)

var (
	outputFlag   string
	cacheDirFlag string
	watchFlag    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <sessionize-export.xlsx>",
	Short: "Build the run sheet workbook from a session export",
	Long: `Reads the flattened Sessionize export, cleans and organises the
sessions by room, downloads speaker photos, and writes one workbook
with summary, print-detail and mobile-detail tabs per room.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"workbook destination (default from config, else run_sheets.xlsx)")
	generateCmd.Flags().StringVar(&cacheDirFlag, "cache-dir", "",
		"speaker photo cache directory (default ~/.runsheet/images_cache)")
	generateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false,
		"keep running and regenerate whenever the export changes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", store.Path(), err)
	}
	if cacheDirFlag != "" {
		settings.CacheDir = cacheDirFlag
	}
	outputPath := settings.OutputPath
	if outputFlag != "" {
		outputPath = outputFlag
	}

	cache, err := imagecache.New(settings.CacheDir, settings)
	if err != nil {
		return fmt.Errorf("open image cache: %w", err)
	}
	defer cache.Close()

	builder := services.NewBuilder(excel.NewReader(), cache, excel.NewFactory())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generateOnce(ctx, cmd, builder, inputPath, outputPath); err != nil {
		return err
	}
	if !watchFlag {
		return nil
	}
	return watch(ctx, cmd, builder, inputPath, outputPath)
}

func generateOnce(ctx context.Context, cmd *cobra.Command, builder *services.Builder, inputPath, outputPath string) error {
	if interactive() {
		cmd.Printf("Generating run sheets from %s...\n", inputPath)
	}

	report, err := builder.Build(ctx, inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("generate run sheets: %w", err)
	}

	cmd.Println(renderReport(report))
	return nil
}

// watch regenerates whenever the export file changes. Exports are
// re-downloaded as whole files, so editors and browsers emit bursts
// of events; a short debounce collapses each burst into one rebuild.
func watch(ctx context.Context, cmd *cobra.Command, builder *services.Builder, inputPath, outputPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: replacing the export swaps the inode, and
	// a watch on the old file would go quiet.
	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(inputPath)
	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", inputPath)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped watching.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce = time.After(500 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-debounce:
			debounce = nil
			if err := generateOnce(ctx, cmd, builder, inputPath, outputPath); err != nil {
				// Keep watching: a half-written export parses badly
				// until the download finishes.
				logger.Warn("regeneration failed: %v", err)
			}
		}
	}
}

// interactive reports whether stdout is a terminal; progress chatter
// is suppressed when output is piped.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
