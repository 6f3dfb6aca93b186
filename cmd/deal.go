package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/pipeline"
	"github.com/edurishi/sales-assistant/internal/store"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Create and manage deals in the sales pipeline",
}

var (
	dealLeadID string
	dealName   string
	dealAmount float64
	dealStage  string
)

var dealCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a deal from a stored lead",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		lead, err := st.GetLead(ctx, dealLeadID)
		if err != nil {
			return err
		}

		deal := pipeline.NewDeal(*lead, pipeline.DealOptions{
			Name:   dealName,
			Amount: dealAmount,
			Stage:  dealStage,
		})
		if err := st.SaveDeal(ctx, &deal); err != nil {
			return err
		}
		entry := newActivity("deal_creation", "New deal created: "+deal.Name, deal.ID, deal.LeadName)
		if err := st.AppendActivity(ctx, entry); err != nil {
			zap.L().Warn("deal: record activity", zap.Error(err))
		}

		fmt.Printf("Deal created: %s\n", deal.ID)
		fmt.Printf("  Name:        %s\n", deal.Name)
		fmt.Printf("  Lead:        %s\n", deal.LeadName)
		fmt.Printf("  Amount:      %s\n", deal.FormattedAmount())
		fmt.Printf("  Stage:       %s (%d%%)\n", deal.Stage, deal.Probability)
		fmt.Printf("  Close date:  %s\n", deal.ExpectedCloseDate)
		return nil
	},
}

var dealMoveStage string

var dealMoveCmd = &cobra.Command{
	Use:   "move <deal-id>",
	Short: "Move a deal to a new pipeline stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !validStage(dealMoveStage) {
			return eris.Errorf("deal: unknown stage %q", dealMoveStage)
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		probability := pipeline.StageProbability(dealMoveStage)
		if err := st.UpdateDealStage(ctx, args[0], dealMoveStage, probability); err != nil {
			return err
		}

		fmt.Printf("Deal %s moved to %s (%d%%)\n", args[0], dealMoveStage, probability)
		return nil
	},
}

var dealSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show deal counts and value by pipeline stage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		deals, err := st.ListDeals(ctx, listAllDeals())
		if err != nil {
			return err
		}

		summary := summarizeDeals(deals)
		fmt.Printf("%-24s %6s %18s\n", "Stage", "Deals", "Value")
		for _, stage := range model.Stages() {
			s := summary.Stages[stage]
			fmt.Printf("%-24s %6d %18s\n", stage, s.Count, s.FormattedValue)
		}
		fmt.Printf("%-24s %6d %18s\n", "Total", summary.TotalDeals,
			model.FormatCurrency(summary.TotalValue, ""))
		return nil
	},
}

func listAllDeals() store.DealFilter {
	return store.DealFilter{Limit: 10000}
}

func validStage(stage string) bool {
	for _, s := range model.Stages() {
		if s == stage {
			return true
		}
	}
	return false
}

// summarizeDeals rebuilds a pipeline from stored deals and aggregates it.
func summarizeDeals(deals []model.Deal) pipeline.Summary {
	p := pipeline.New()
	byID := make(map[string]*model.Deal, len(deals))
	for i := range deals {
		d := &deals[i]
		p.Add(d)
		byID[d.ID] = d
	}
	return p.Summarize(byID)
}

func init() {
	dealCreateCmd.Flags().StringVar(&dealLeadID, "lead", "", "lead ID (required)")
	dealCreateCmd.Flags().StringVar(&dealName, "name", "", "deal name (default derived from lead)")
	dealCreateCmd.Flags().Float64Var(&dealAmount, "amount", 0, "deal amount (default lead budget)")
	dealCreateCmd.Flags().StringVar(&dealStage, "stage", "", "initial stage (default Lead Qualification)")
	_ = dealCreateCmd.MarkFlagRequired("lead")

	dealMoveCmd.Flags().StringVar(&dealMoveStage, "stage", "", "target stage (required)")
	_ = dealMoveCmd.MarkFlagRequired("stage")

	dealCmd.AddCommand(dealCreateCmd, dealMoveCmd, dealSummaryCmd)
	rootCmd.AddCommand(dealCmd)
}
