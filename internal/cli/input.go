package cli

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// input reúne o que todos os subcomandos precisam
type input struct {
	records     []domain.PerformanceRecord
	campaignIDs []domain.CampaignID
	names       domain.CampaignNames
}

func loadInput(cmd *cobra.Command) (*input, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return nil, fmt.Errorf("--file is required")
	}

	campaigns, _ := cmd.Flags().GetString("campaigns")
	campaignIDs := domain.ParseCampaignIDs(campaigns)

	records, err := readRecords(cmd, file)
	if err != nil {
		return nil, err
	}

	names := domain.CampaignNames{}
	if namesFile, _ := cmd.Flags().GetString("names"); namesFile != "" {
		names, err = readNames(namesFile)
		if err != nil {
			return nil, err
		}
	}

	return &input{
		records:     records,
		campaignIDs: campaignIDs,
		names:       names,
	}, nil
}

// readRecords descarta os registros que não podem ser convertidos; a contagem vai para o stderr
func readRecords(cmd *cobra.Command, file string) ([]domain.PerformanceRecord, error) {
	var reader io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening records file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var raw []map[string]any
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}

	records := make([]domain.PerformanceRecord, 0, len(raw))
	skipped := 0
	for i, item := range raw {
		record, err := domain.ParseRecord(item)
		if err != nil {
			logrus.WithField("index", i).WithError(err).Debug("insightsctl: registro ignorado")
			skipped++
			continue
		}
		records = append(records, record)
	}

	if skipped > 0 {
		logrus.Warnf("%d of %d records skipped as malformed", skipped, len(raw))
	}

	return records, nil
}

func readNames(file string) (domain.CampaignNames, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("opening names file: %w", err)
	}

	var campaigns []domain.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, fmt.Errorf("decoding names: %w", err)
	}

	return domain.NamesOf(campaigns), nil
}

func writeOutput(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
