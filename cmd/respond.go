package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/insights"
	"github.com/edurishi/sales-assistant/internal/recommend"
	"github.com/edurishi/sales-assistant/internal/resilience"
	"github.com/edurishi/sales-assistant/internal/respond"
	"github.com/edurishi/sales-assistant/pkg/gentext"
)

var (
	respondLeadID  string
	respondEnquiry string
	respondHistory string
	respondSave    bool
)

var respondCmd = &cobra.Command{
	Use:   "respond",
	Short: "Generate a personalized sales response for a lead enquiry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("respond"); err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		lead, err := st.GetLead(ctx, respondLeadID)
		if err != nil {
			return err
		}
		rec := lead.Record()

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		retry := resilience.DefaultRetryConfig()
		retry.OnRetry = resilience.RetryLogger("anthropic", "create_message")
		client := gentext.NewClient(cfg.Anthropic.Key, cfg.Anthropic.RequestsPerSec,
			gentext.WithRetry(retry))
		responder := respond.NewResponder(client, recommend.NewEngine(catalog),
			respond.WithModel(cfg.Anthropic.Model),
			respond.WithMaxTokens(int64(cfg.Anthropic.MaxTokens)),
			respond.WithTimeout(time.Duration(cfg.Anthropic.TimeoutSecs)*time.Second),
		)

		text, err := responder.Respond(ctx, rec, respondEnquiry, respondHistory)
		if err != nil {
			return err
		}
		fmt.Println(text)

		entry := newActivity("response", "Generated sales response", lead.ID, lead.Name)
		if err := st.AppendActivity(ctx, entry); err != nil {
			zap.L().Warn("respond: record activity", zap.Error(err))
		}

		if respondSave {
			conversation := []map[string]string{
				{"role": "user", "content": respondEnquiry},
				{"role": "assistant", "content": text},
			}
			path, err := insights.SaveConversation(cfg.Output.ConversationsDir,
				lead.Name, conversation, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("\nConversation saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	f := respondCmd.Flags()
	f.StringVar(&respondLeadID, "lead", "", "stored lead ID (required)")
	f.StringVar(&respondEnquiry, "enquiry", "", "customer enquiry text (required)")
	f.StringVar(&respondHistory, "history", "", "prior conversation to continue from")
	f.BoolVar(&respondSave, "save", false, "save the conversation to the conversations directory")
	_ = respondCmd.MarkFlagRequired("lead")
	_ = respondCmd.MarkFlagRequired("enquiry")
	rootCmd.AddCommand(respondCmd)
}
