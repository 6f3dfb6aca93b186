package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/session"
)

var (
	importCSVPath     string
	importConcurrency int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import and score leads from a CSV file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := readRecordsCSV(importCSVPath)
		if err != nil {
			return err
		}

		sess := session.New()
		leads := make([]*model.Lead, len(records))
		for i, rec := range records {
			leads[i] = sess.CreateLead(rec)
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(importConcurrency)
		for _, lead := range leads {
			g.Go(func() error {
				return st.SaveLead(gctx, lead)
			})
		}
		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "import: save leads")
		}

		if err := appendActivities(ctx, st, sess.Log().Activities()); err != nil {
			zap.L().Warn("import: persist activities", zap.Error(err))
		}

		summary := sess.LeadSummary()
		zap.L().Info("import complete",
			zap.Int("leads", summary.TotalLeads),
			zap.String("csv", importCSVPath),
		)
		fmt.Printf("Imported %d leads from %s\n", summary.TotalLeads, importCSVPath)
		for status, count := range summary.Status {
			fmt.Printf("  %-10s %d\n", status, count)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "path to CSV file (required)")
	importCmd.Flags().IntVar(&importConcurrency, "concurrency", 4, "concurrent store writes")
	_ = importCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(importCmd)
}

// readRecordsCSV parses a lead CSV into raw records. The header row names
// the fields; unknown columns are ignored and missing ones stay zero.
func readRecordsCSV(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "import: open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "import: read CSV header")
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var records []model.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "import: read CSV row")
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		intField := func(name string) int {
			n, _ := strconv.Atoi(field(name))
			return n
		}

		rec := model.Record{
			Name:                field("name"),
			Email:               field("email"),
			Phone:               field("phone"),
			ContactPerson:       field("contact_person"),
			Profession:          field("profession"),
			Company:             field("company"),
			Location:            field("location"),
			City:                field("city"),
			State:               field("state"),
			BusinessType:        field("business_type"),
			BusinessSubcategory: field("business_subcategory"),
			ProductInterested:   field("product_interested"),
			ProductPitched:      field("product_pitched"),
			Budget:              field("budget"),
			Source:              field("source"),
			SourceDetail:        field("source_detail"),
			DecisionTimeline:    field("decision_timeline"),
			EmailOpened:         intField("email_opened"),
			EmailReplied:        intField("email_replied"),
			MeetingsAttended:    intField("meetings_attended"),
			Notes:               field("notes"),
			Owner:               field("owner"),
			Website:             field("website"),
			Address:             field("address"),
			Pincode:             field("pincode"),
		}
		if tags := field("tags"); tags != "" {
			rec.Tags = splitAndTrim(tags)
		}
		records = append(records, rec)
	}
	return records, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
