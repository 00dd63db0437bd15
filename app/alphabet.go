package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mormao/randstr/internal/runner"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(alphabetCmd)
}

var alphabetCmd = &cobra.Command{
	Use:   "alphabet",
	Short: "Print the characters strings are drawn from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := runner.Alphabet(cfg.Alphabet)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d characters in %d ranges\n", a, a.Len(), len(a.Ranges()))

		return nil
	},
}
