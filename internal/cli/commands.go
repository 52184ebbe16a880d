package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

func newTotalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "totals",
		Aliases: []string{"compare", "bar"},
		Short:   "Total of one metric per campaign",
		RunE:    runTotals,
	}
	cmd.Flags().String("metric", "", "Metric key: clicks, conversions, revenue, impressions, ctr, roi (required)")
	cmd.Flags().Bool("round", false, "Round values to two decimal places")
	_ = cmd.MarkFlagRequired("metric")
	return cmd
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"radar"},
		Short:   "Normalized 0-100 score per campaign for each metric",
		RunE:    runProfile,
	}
	cmd.Flags().String("metrics", "", "Comma separated metric keys (default: all metrics)")
	return cmd
}

func newTimeSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeseries",
		Aliases: []string{"series", "line"},
		Short:   "Daily value of one metric per campaign, with missing days as zero",
		RunE:    runTimeSeries,
	}
	cmd.Flags().String("metric", "", "Metric key: clicks, conversions, revenue, impressions, ctr, roi (required)")
	cmd.Flags().Bool("round", false, "Round values to two decimal places")
	_ = cmd.MarkFlagRequired("metric")
	return cmd
}

func runTotals(cmd *cobra.Command, args []string) error {
	metricFlag, _ := cmd.Flags().GetString("metric")
	metric, err := domain.ParseMetricKey(metricFlag)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd)
	if err != nil {
		return err
	}

	points, err := aggregating.AggregateTotals(in.records, in.names, in.campaignIDs, metric)
	if err != nil {
		return err
	}

	if round, _ := cmd.Flags().GetBool("round"); round {
		for i := range points {
			points[i].Value = utils.RoundWithTwoDecimalPlace(points[i].Value)
		}
	}

	return writeOutput(cmd, points)
}

func runProfile(cmd *cobra.Command, args []string) error {
	metrics := domain.MetricKeys()
	if metricsFlag, _ := cmd.Flags().GetString("metrics"); metricsFlag != "" {
		var err error
		metrics, err = domain.ParseMetricKeys(metricsFlag)
		if err != nil {
			return err
		}
	}

	in, err := loadInput(cmd)
	if err != nil {
		return err
	}

	points, err := aggregating.BuildNormalizedProfile(in.records, in.campaignIDs, metrics)
	if err != nil {
		return err
	}

	return writeOutput(cmd, points)
}

func runTimeSeries(cmd *cobra.Command, args []string) error {
	metricFlag, _ := cmd.Flags().GetString("metric")
	metric, err := domain.ParseMetricKey(metricFlag)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd)
	if err != nil {
		return err
	}

	series, err := aggregating.BuildTimeSeries(in.records, in.campaignIDs, metric)
	if err != nil {
		return err
	}

	if round, _ := cmd.Flags().GetBool("round"); round {
		for _, point := range series {
			for id, value := range point.Values {
				point.Values[id] = utils.RoundWithTwoDecimalPlace(value)
			}
		}
	}

	return writeOutput(cmd, series)
}
