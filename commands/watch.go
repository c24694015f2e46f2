package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-uptime-chart/internal/analyzer"
	"github.com/penwyp/go-uptime-chart/internal/data/watcher"
	"github.com/penwyp/go-uptime-chart/internal/presentation/display"
	"github.com/penwyp/go-uptime-chart/internal/presentation/interaction"
	"github.com/penwyp/go-uptime-chart/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	watchFile        string
	watchRefreshRate int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously redraw the uptime charts",
	Long: `Re-runs the whole pipeline and redraws the charts whenever the login
record file changes, with a periodic fallback refresh. Press q or Ctrl+C to
quit.

Each redraw recomputes the full history from the log source; nothing is
cached between redraws.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFile, "watch-file", "/var/log/wtmp",
		"Login record file to watch for changes")
	watchCmd.Flags().IntVar(&watchRefreshRate, "refresh-rate", 300,
		"Fallback refresh interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	if watchRefreshRate < 1 {
		return fmt.Errorf("refresh-rate must be at least 1 second")
	}

	config := &analyzer.Config{
		SourceCommand: sourceCommand,
		InputFile:     inputFile,
		NoColor:       noColor,
	}
	a := analyzer.New(config)

	interactive := display.StdoutIsTerminal()
	styler := display.NewStyler(interactive && !noColor)
	screen := display.NewScreen(os.Stdout, interactive)
	renderer := display.NewChartRenderer(os.Stdout, styler)

	redraw := func() error {
		report, err := a.Report()
		if err != nil {
			return err
		}
		screen.Clear()
		if err := renderer.Render(report); err != nil {
			return err
		}
		fmt.Printf("\nUpdated %s – press q to quit\n",
			util.GetTimeProvider().Now().Format("15:04:05"))
		return nil
	}

	screen.HideCursor()
	defer screen.ShowCursor()

	// The first draw validates the pipeline; a broken log source should
	// fail the command instead of an empty looping screen.
	if err := redraw(); err != nil {
		return err
	}

	// File change events; watch mode still works (ticker only) when the
	// file cannot be watched, e.g. missing read permissions on the
	// directory.
	target := watchFile
	if inputFile != "" {
		target = inputFile
	}
	var fileEvents <-chan watcher.Event
	fw, err := watcher.NewFileWatcher(target)
	if err != nil {
		util.LogWarnf("Cannot watch %s: %v; falling back to periodic refresh", target, err)
	} else {
		fileEvents = fw.Events()
		defer fw.Close()
	}

	// Keyboard input, only when stdin is a terminal.
	var keyEvents <-chan interaction.KeyEvent
	if term.IsTerminal(int(os.Stdin.Fd())) {
		kb, err := interaction.NewKeyboardReader()
		if err != nil {
			util.LogWarnf("Cannot read keyboard input: %v", err)
		} else {
			keyEvents = kb.Events()
			defer kb.Close()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(watchRefreshRate) * time.Second)
	defer ticker.Stop()

	// Debounce timer channel; wtmp updates arrive in bursts.
	var pending <-chan time.Time

	for {
		select {
		case event := <-fileEvents:
			util.LogDebugf("Log file changed: %s %s", event.Path, event.Operation)
			pending = time.After(500 * time.Millisecond)

		case <-pending:
			pending = nil
			if err := redraw(); err != nil {
				return err
			}

		case <-ticker.C:
			if err := redraw(); err != nil {
				return err
			}

		case key := <-keyEvents:
			switch key.Key {
			case 'q', 'Q', 3, 27:
				return nil
			}

		case <-sigCh:
			return nil
		}
	}
}
