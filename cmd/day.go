package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/probe"
)

var dayCmd = &cobra.Command{
	Use:   "day YYYY-MM-DD",
	Short: "List the images that exist for a day",
	Long: `Probe the base image and every lettered variant for a day and print the
ones that exist, base first, or "No events posted." when there are none.`,
	Args: cobra.ExactArgs(1),
	RunE: runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	view, day, err := calendar.ParseDate(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	cands := assets.Candidates(view.Year, view.Month, day, s.cfg.Letters)
	set := probe.Discover(commandContext(cmd), s.src, cands, s.log, nil)
	printerFor(cmd).Day(view.EventsTitle(day), set.Paths())
	return nil
}
