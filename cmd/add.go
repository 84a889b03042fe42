package cmd

import (
	"fmt"

	"github.com/abhisek/inkwell/internal/deck"
	"github.com/spf13/cobra"
)

var (
	addDefinition string
	addExample    string
)

var addCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Add a word to the vocabulary deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := deck.NewService(st.VocabRepo(), st.EventRepo())
		entry, err := svc.AddWord(cmd.Context(), args[0], addDefinition, addExample)
		if err != nil {
			return err
		}
		fmt.Printf("Added %q — first review due now.\n", entry.Word)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDefinition, "definition", "d", "", "Definition of the word (required)")
	addCmd.Flags().StringVarP(&addExample, "example", "e", "", "Example sentence")
	_ = addCmd.MarkFlagRequired("definition")
}
