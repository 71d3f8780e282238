package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/tui"
	"github.com/papapumpkin/almanac/internal/watch"
)

func init() {
	rootCmd.Flags().String("month", "", "month to open, YYYY-MM (default: current month)")
}

// runCalendar launches the interactive calendar.
func runCalendar(cmd *cobra.Command, _ []string) error {
	view := calendar.Today(time.Now())
	if s, _ := cmd.Flags().GetString("month"); s != "" {
		var err error
		if view, err = calendar.ParseMonth(s); err != nil {
			return err
		}
	}

	if !isStderrTTY() {
		return errors.New("almanac requires a TTY (terminal); use 'almanac month' for plain output")
	}

	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	var w *watch.Watcher
	if s.cfg.Watch && !assets.IsURL(s.cfg.Assets) {
		w, err = watch.New(s.cfg.Assets)
		if err != nil {
			s.log.Warn("asset watcher unavailable", zap.Error(err))
			printerFor(cmd).Info(fmt.Sprintf("live refresh disabled: %v", err))
		} else {
			w.Start()
			defer w.Stop()
		}
	}

	s.log.Info("calendar started", zap.String("month", view.String()))
	err = tui.Run(view, tui.Deps{
		Source:    s.src,
		Root:      s.cfg.Assets,
		Letters:   s.cfg.Letters,
		Preview:   s.cfg.Preview,
		Log:       s.log,
		Telemetry: s.telemetry,
		Watcher:   w,
	}, tui.WithOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	return nil
}
