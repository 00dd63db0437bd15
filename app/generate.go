package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mormao/randstr/internal/runner"
)

func init() { //nolint: gochecknoinits
	generateCmd.Flags().IntP("length", "l", 0, "characters per string")
	generateCmd.Flags().IntP("count", "n", 0, "number of strings")
	generateCmd.Flags().Uint64("seed", 0, "use a deterministic source with this seed (not for secrets)")
	generateCmd.Flags().Bool("unique", false, "never hand out a string recorded in the ledger")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random strings, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		r, err := runner.New(&cfg)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := r.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		out, err := r.Generate()
		for _, s := range out {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
		}

		return err
	},
}
