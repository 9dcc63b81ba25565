package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/irab/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <sentence>",
	Short: "Analyze one sentence and print the result",
	Args:  cobra.MinimumNArgs(1),
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

		sentence := strings.Join(args, " ")
		res, err := newClient(cfg, log).SubmitSentence(cmd.Context(), sentence)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), analysis.MessageTransport)
			return err
		}
		if res.Error {
			fmt.Fprintln(cmd.ErrOrStderr(), analysis.MessageBadInput)
			if res.Message != "" {
				return errors.New(res.Message)
			}
			return errors.New("backend rejected the sentence")
		}

		fmt.Fprintln(cmd.OutOrStdout(), analysis.ResultPrefix)
		fmt.Fprintln(cmd.OutOrStdout(), res.Result)
		return nil
	},
}
