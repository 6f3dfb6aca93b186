package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/recommend"
)

var (
	recLeadID     string
	recProfession string
	recInterested string
	recPitched    string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend products for a lead",
	Long: `Picks up to three products for a customer. Stated interests win,
then previously pitched products, then a profession-based default set.

Examples:
  # Recommend for a stored lead
  recommend --lead 6f1c...

  # Ad hoc, without a stored lead
  recommend --profession Principal --interested "ELAP, MDL"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var rec model.Record
		if recLeadID != "" {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			lead, err := st.GetLead(ctx, recLeadID)
			if err != nil {
				return err
			}
			rec = lead.Record()
		} else {
			rec = model.Record{
				Profession:        recProfession,
				ProductInterested: recInterested,
				ProductPitched:    recPitched,
			}
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		recs := recommend.NewEngine(catalog).Recommend(rec)

		for i, r := range recs {
			fmt.Printf("%d. %s — %s\n", i+1, r.Name, r.Pricing)
			fmt.Printf("   %s\n", r.Description)
		}
		return nil
	},
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recLeadID, "lead", "", "stored lead ID")
	f.StringVar(&recProfession, "profession", "", "customer profession (when no --lead)")
	f.StringVar(&recInterested, "interested", "", "comma-separated products of interest")
	f.StringVar(&recPitched, "pitched", "", "comma-separated products already pitched")
	rootCmd.AddCommand(recommendCmd)
}
