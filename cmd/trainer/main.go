package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	"github.com/yungbote/nogi-trainer/internal/comments"
	"github.com/yungbote/nogi-trainer/internal/navigator"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
	"github.com/yungbote/nogi-trainer/internal/tui"
)

var (
	apiURL   string
	nameFile string
	logFile  string
	logMode  string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Browse nogi BJJ techniques and discuss them",
	Long: `trainer is a terminal client for the Nogi BJJ Trainer.

Browse the technique catalog by section, open a move for its steps, cues,
mistakes and safety notes, and read or post comments on it.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api", comments.DefaultBaseURL, "comment API base URL")
	rootCmd.Flags().StringVar(&nameFile, "name-file", "", "file holding your display name (default <config dir>/nogi-trainer/"+navigator.NameKey+")")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")
	rootCmd.Flags().StringVar(&logMode, "log-mode", "development", "log mode: development or production")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logger.NewToFile(logMode, logFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	reg, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	for _, mm := range reg.Validate() {
		log.Warn("Catalog move count is stale", "category", mm.Key, "declared", mm.Declared, "actual", mm.Actual)
	}

	path := nameFile
	if path == "" {
		if path, err = navigator.DefaultNamePath(); err != nil {
			return err
		}
	}

	client, err := comments.New(comments.Options{BaseURL: apiURL, Timeout: timeout, Log: log})
	if err != nil {
		return err
	}

	renderer, err := tui.NewMarkdownRenderer(80)
	if err != nil {
		log.Warn("markdown renderer unavailable, using plain text", "error", err)
		renderer = tui.PlainRenderer{}
	}

	model := tui.New(tui.Options{
		Navigator: navigator.New(reg),
		Session:   navigator.NewSession(log, navigator.NewFileNameStore(path)),
		Workflow:  comments.NewWorkflow(client),
		Renderer:  renderer,
		Log:       log,
	})

	log.Info("trainer starting", "api", client.BaseURL(), "name_file", path)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
