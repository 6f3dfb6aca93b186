package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/insights"
	"github.com/edurishi/sales-assistant/internal/recommend"
)

var packageLeadID string

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Export a client package directory for a lead",
	Long: `Writes a per-customer directory under the configured packages path
containing a product information sheet and any available brochures for the
lead's recommended products.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		lead, err := st.GetLead(ctx, packageLeadID)
		if err != nil {
			return err
		}
		rec := lead.Record()

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		recs := recommend.NewEngine(catalog).Recommend(rec)

		dir, err := insights.WriteClientPackage(cfg.Output.PackagesDir, rec, recs, time.Now())
		if err != nil {
			return err
		}

		entry := newActivity("package", "Exported client package", lead.ID, lead.Name)
		if err := st.AppendActivity(ctx, entry); err != nil {
			zap.L().Warn("package: record activity", zap.Error(err))
		}

		fmt.Printf("Client package written to %s\n", dir)
		return nil
	},
}

func init() {
	packageCmd.Flags().StringVar(&packageLeadID, "lead", "", "stored lead ID (required)")
	_ = packageCmd.MarkFlagRequired("lead")
	rootCmd.AddCommand(packageCmd)
}
