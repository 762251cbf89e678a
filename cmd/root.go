package cmd

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"japmic/ui/canvas"
	"japmic/ui/canvasview"
)

const (
	defaultBackground = string(canvas.ModeIPhone)
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

var (
	rootBackground string
	rootCellWidth  int
	rootCellHeight int
	rootLogPath    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "japmic",
	Short: "Show the japmic canvas in the terminal",
	Long: `Show the japmic canvas: a black drawing surface with a "japmic" label,
resized to fit the terminal.

Controls:
  b          - Switch background (japmic / iphone)
  q, Esc     - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := canvas.ParseMode(rootBackground)
		if err != nil {
			return err
		}

		closeLog, err := setupLogging(rootLogPath)
		if err != nil {
			return err
		}
		defer closeLog()

		m, err := canvasview.New(canvasview.Config{
			Background: mode,
			CellWidth:  rootCellWidth,
			CellHeight: rootCellHeight,
		})
		if err != nil {
			return err
		}

		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if fm, ok := final.(canvasview.Model); ok {
			if cerr := fm.Close(); cerr != nil {
				log.Printf("close canvas: %v", cerr)
			}
		}
		if err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	},
}

// setupLogging sends log output to path, or discards it when path is empty.
// The alt screen owns stdout, so logs never go there.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "japmic")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	gg.SetLogger(slog.Default())
	return func() {
		gg.SetLogger(nil)
		_ = f.Close()
	}, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&rootBackground, "background", "b", defaultBackground, `Label style: "japmic" or "iphone"`)
	rootCmd.Flags().IntVar(&rootCellWidth, "cell-width", defaultCellWidth, "Pixels per terminal column")
	rootCmd.Flags().IntVar(&rootCellHeight, "cell-height", defaultCellHeight, "Pixels per terminal row")
	rootCmd.Flags().StringVar(&rootLogPath, "log", "", "Write debug logs to this file (default: no logging)")
}
