package insights

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/recommend"
)

const packageTimestampFormat = "2006-01-02 15:04:05"

// WriteClientPackage writes a per-customer directory under baseDir holding a
// product_information.txt summary and copies of any recommended-product
// brochures that exist on disk. It returns the directory written.
func WriteClientPackage(baseDir string, rec model.Record, recs []recommend.Recommendation, now time.Time) (string, error) {
	name := rec.Name
	if name == "" {
		name = "Unknown"
	}

	dir := filepath.Join(baseDir, strings.ReplaceAll(name, " ", "_"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "insights: create package dir %s", dir)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EduRishi Product Information for %s\n", name)
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(packageTimestampFormat))

	b.WriteString("Contact Information:\n")
	if rec.ContactPerson != "" {
		fmt.Fprintf(&b, "Contact Person: %s\n", rec.ContactPerson)
	}
	if rec.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", rec.Phone)
	}
	if rec.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", rec.Email)
	}
	b.WriteString("\nProducts of Interest:\n")
	if rec.ProductInterested != "" {
		fmt.Fprintf(&b, "Specifically interested in: %s\n", rec.ProductInterested)
	}

	b.WriteString("\nRecommended Products:\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "- %s\n", r.Name)
		fmt.Fprintf(&b, "  Description: %s\n", r.Description)
		if r.Pricing != "" {
			fmt.Fprintf(&b, "  Pricing: %s\n", r.Pricing)
		}
		fmt.Fprintf(&b, "  Brochure: %s\n", r.Brochure)
		fmt.Fprintf(&b, "  Video: %s\n\n", r.Video)
	}

	if rec.Budget != "" {
		fmt.Fprintf(&b, "\nBudget Information: %s\n", rec.Budget)
	}

	infoFile := filepath.Join(dir, "product_information.txt")
	if err := os.WriteFile(infoFile, []byte(b.String()), 0o644); err != nil {
		return "", eris.Wrapf(err, "insights: write %s", infoFile)
	}

	for _, r := range recs {
		if r.Brochure == "" {
			continue
		}
		if err := copyFile(r.Brochure, filepath.Join(dir, filepath.Base(r.Brochure))); err != nil {
			// Missing brochure files are expected when running outside
			// the asset tree; the text summary still references them.
			zap.L().Debug("insights: brochure not copied",
				zap.String("brochure", r.Brochure),
				zap.Error(err),
			)
		}
	}

	return dir, nil
}

// SaveConversation serializes a conversation record to a timestamped JSON
// file under dir and returns the path written.
func SaveConversation(dir, customerName string, conversation any, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "insights: create conversation dir %s", dir)
	}

	name := strings.ReplaceAll(customerName, " ", "_")
	if name == "" {
		name = "Unknown"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", name, now.Format("20060102_150405")))

	data, err := json.MarshalIndent(conversation, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "insights: marshal conversation")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "insights: write %s", path)
	}
	return path, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
