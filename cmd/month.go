package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/probe"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Print a month grid with has-image markers",
	Long: `Print the calendar grid for a month (default: current month). Days with
at least one image are followed by a marker.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	now := time.Now()
	view := calendar.Today(now)
	if len(args) == 1 {
		var err error
		if view, err = calendar.ParseMonth(args[0]); err != nil {
			return err
		}
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	g := calendar.Build(view, now)
	found := make([]bool, len(g.Days))
	ctx := commandContext(cmd)
	var eg errgroup.Group
	for i := range g.Days {
		cands := assets.Candidates(view.Year, view.Month, i+1, s.cfg.Letters)
		eg.Go(func() error {
			found[i] = probe.AnyExists(ctx, s.src, cands, s.log)
			return nil
		})
	}
	_ = eg.Wait()

	for i, ok := range found {
		if ok {
			g.Days[i].MarkImage()
		}
	}
	printerFor(cmd).Month(g)
	return nil
}
