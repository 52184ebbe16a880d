// Package cli implementa o insightsctl, que calcula as visões de comparação de
// campanhas sobre um arquivo JSON de registros, sem banco de dados.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

// NewRootCmd monta a árvore de comandos
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "insightsctl",
		Short: "Compare campaign performance from a JSON file of daily records",
		Long: `insightsctl reads daily performance records and prints comparison views as JSON.

Records are a JSON array of objects with campaign_id, date (YYYY-MM-DD) and the
numeric fields clicks, impressions, conversions, revenue, ctr and roi. Numbers
sent as strings are accepted; malformed records are skipped.

Examples:
  insightsctl totals --file records.json --campaigns 1,2 --metric clicks
  insightsctl profile --file records.json --campaigns 1,2 --metrics clicks,revenue
  insightsctl timeseries --file records.json --campaigns 1,2 --metric revenue --round`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().String("file", "", "Path to the JSON records file, or - for stdin (required)")
	rootCmd.PersistentFlags().String("campaigns", "", "Comma separated campaign ids, in output order (required)")
	rootCmd.PersistentFlags().String("names", "", "Optional JSON file with [{\"id\":..., \"name\":...}] used for labels")
	rootCmd.PersistentFlags().Bool("debug", false, "Log skipped records to stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logrus.WarnLevel)
		if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	rootCmd.AddCommand(newTotalsCmd(), newProfileCmd(), newTimeSeriesCmd())
	return rootCmd
}

// Execute executa o comando raiz
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}
