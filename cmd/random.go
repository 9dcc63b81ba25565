package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random practice sentence",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, err := openLogger(cfg)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer log.Sync()

		sentence, err := newClient(cfg, log).FetchRandomSentence(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch random sentence: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sentence)
		return nil
	},
}
