package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/inkwell/internal/progress"
	"github.com/abhisek/inkwell/internal/rank"
	"github.com/abhisek/inkwell/internal/score"
	"github.com/spf13/cobra"
)

var writingCmd = &cobra.Command{
	Use:   "writing",
	Short: "Manage the graded writing history",
}

var (
	writingPrompt string
	writingBody   string
	writingFile   string
	writingRanks  = map[string]*string{
		"overall":    new(string),
		"grammar":    new(string),
		"vocabulary": new(string),
		"structure":  new(string),
		"content":    new(string),
	}
)

var writingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an externally graded writing",
	Long: "Record a finished writing together with the grades it received. " +
		"Grading happens outside Inkwell; each axis takes a ladder rank (S, A+, A, A-, B+, B, B-, C+, C, C-, D).",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := writingBody
		if writingFile != "" {
			data, err := os.ReadFile(writingFile)
			if err != nil {
				return fmt.Errorf("read writing file: %w", err)
			}
			body = string(data)
		}

		fb, err := parseFeedback()
		if err != nil {
			return err
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progress.NewService(st.WritingRepo())
		rec, err := svc.LogWriting(cmd.Context(), writingPrompt, body, fb, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Recorded writing %s (overall %s).\n", rec.ID, rec.Feedback.Overall)
		return nil
	},
}

func parseFeedback() (score.Feedback, error) {
	parse := func(axis string) (rank.Rank, error) {
		r, err := rank.Parse(*writingRanks[axis])
		if err != nil {
			return r, fmt.Errorf("--%s-rank: %w", axis, err)
		}
		return r, nil
	}

	var fb score.Feedback
	var err error
	if fb.Overall, err = parse("overall"); err != nil {
		return fb, err
	}
	if fb.Grammar, err = parse("grammar"); err != nil {
		return fb, err
	}
	if fb.Vocabulary, err = parse("vocabulary"); err != nil {
		return fb, err
	}
	if fb.Structure, err = parse("structure"); err != nil {
		return fb, err
	}
	if fb.Content, err = parse("content"); err != nil {
		return fb, err
	}
	return fb, nil
}

func init() {
	writingAddCmd.Flags().StringVar(&writingPrompt, "prompt", "", "Prompt the writing responded to")
	writingAddCmd.Flags().StringVar(&writingBody, "body", "", "Writing text")
	writingAddCmd.Flags().StringVar(&writingFile, "file", "", "Read the writing text from a file")
	for axis, dest := range writingRanks {
		writingAddCmd.Flags().StringVar(dest, axis+"-rank", "", "Rank for "+axis)
		_ = writingAddCmd.MarkFlagRequired(axis + "-rank")
	}
	writingAddCmd.MarkFlagsMutuallyExclusive("body", "file")

	writingCmd.AddCommand(writingAddCmd)
}
