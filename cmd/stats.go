package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/abhisek/inkwell/internal/progress"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show writing skill and deck statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		progressSvc := progress.NewService(st.WritingRepo())
		snap, err := progressSvc.Snapshot(ctx, now)
		if err != nil {
			return err
		}
		wroteToday, err := progressSvc.WroteToday(ctx, now)
		if err != nil {
			return err
		}
		due, err := deck.NewService(st.VocabRepo(), st.EventRepo()).DueEntries(ctx, now)
		if err != nil {
			return err
		}

		if snap.TotalWritings == 0 {
			fmt.Println("No writings yet.")
		} else {
			fmt.Printf("Overall     %s  (%s)\n", snap.Overall, trendLabel(snap.Trend))
			fmt.Printf("Grammar     %s\n", snap.Grammar)
			fmt.Printf("Vocabulary  %s\n", snap.Vocabulary)
			fmt.Printf("Structure   %s\n", snap.Structure)
			fmt.Printf("Content     %s\n", snap.Content)
			fmt.Printf("Writings    %d\n", snap.TotalWritings)
			fmt.Printf("Streak      %d day(s)\n", snap.CurrentStreak)
		}
		fmt.Printf("Due words   %d\n", len(due))
		if !wroteToday {
			fmt.Println("\nNo writing logged today yet.")
		}

		events, err := st.EventRepo().RecentReviews(ctx, 5)
		if err != nil {
			return err
		}
		if len(events) > 0 {
			fmt.Println("\nRecent reviews:")
			for _, ev := range events {
				fmt.Printf("  %s  %-20s %-6s %dd → %dd\n",
					ev.Timestamp.Format("2006-01-02"), ev.Word, ev.Rating,
					ev.IntervalBefore, ev.IntervalAfter)
			}
		}
		return nil
	},
}

func trendLabel(t score.Trend) string {
	switch t {
	case score.TrendUp:
		return "improving"
	case score.TrendDown:
		return "slipping"
	default:
		return "steady"
	}
}
