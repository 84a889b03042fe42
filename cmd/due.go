package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List words due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := deck.NewService(st.VocabRepo(), st.EventRepo())
		now := time.Now()
		entries, err := svc.DueEntries(cmd.Context(), now)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Nothing due. Come back tomorrow.")
			return nil
		}

		fmt.Printf("%d due:\n", len(entries))
		for _, e := range entries {
			status := "new"
			if e.Review.NextReviewAt != nil {
				if d := int(e.Review.OverdueDays(now)); d >= 1 {
					status = fmt.Sprintf("overdue %dd", d)
				} else {
					status = "due"
				}
			}
			fmt.Printf("  %-20s %s\n", e.Word, status)
		}
		return nil
	},
}
