// Package recommend maps customer records to ranked product suggestions
// using layered fallback rules against the product catalog.
package recommend

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Product is one catalog entry.
type Product struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Brochure    string `yaml:"brochure" json:"brochure"`
	Pricing     string `yaml:"pricing" json:"pricing"`
	Video       string `yaml:"video" json:"video"`
}

// Catalog maps product codes to their entries.
type Catalog map[string]Product

// DefaultCatalog returns the built-in EduRishi product catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"ELAP": {
			Name:        "ELAP (Experiential Learning and Assessment Program)",
			Description: "Comprehensive experiential learning program designed for schools",
			Brochure:    "EduRishi Final Brochures/ELAP_Brochure.pdf",
			Pricing:     "₹800 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=elapoverview",
		},
		"MDL": {
			Name:        "MDL (Multi-Dimensional Learning)",
			Description: "Multi-dimensional approach to learning that enhances student engagement",
			Brochure:    "EduRishi Final Brochures/MDL_Brochure.pdf",
			Pricing:     "₹1,200 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=mdloverview",
		},
		"PBL": {
			Name:        "PBL (Project-Based Learning)",
			Description: "Project-based learning methodology for practical skill development",
			Brochure:    "EduRishi Final Brochures/PBL_Brochure.pdf",
			Pricing:     "₹950 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=pbloverview",
		},
		"ICT": {
			Name:        "ICT (Information and Communication Technology)",
			Description: "Technology integration in education for digital literacy",
			Brochure:    "EduRishi Final Brochures/ICT_Brochure.pdf",
			Pricing:     "₹1,500 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=ictoverview",
		},
		"AI Workshop": {
			Name:        "AI Workshop",
			Description: "Hands-on workshops introducing artificial intelligence concepts",
			Brochure:    "AI_Workshop_Brochure.pdf",
			Pricing:     "₹15,000 per workshop (up to 30 participants)",
			Video:       "https://www.youtube.com/watch?v=aiworkshopoverview",
		},
		"LMS": {
			Name:        "Learning Management System",
			Description: "Comprehensive platform for managing digital learning content",
			Brochure:    "LMS_Brochure.pdf",
			Pricing:     "₹25,000 per school (annual license)",
			Video:       "https://www.youtube.com/watch?v=lmsoverview",
		},
		"AI software": {
			Name:        "AI-Powered Educational Software",
			Description: "Advanced software using AI to personalize learning experiences",
			Brochure:    "AI_Software_Brochure.pdf",
			Pricing:     "₹1,800 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=aisoftwareoverview",
		},
		"AI tutor": {
			Name:        "AI Tutor",
			Description: "Virtual tutoring system powered by artificial intelligence",
			Brochure:    "AI_Tutor_Brochure.pdf",
			Pricing:     "₹1,200 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=aitutoroverview",
		},
		"Simulation": {
			Name:        "Educational Simulations",
			Description: "Interactive simulations for science, math, and other subjects",
			Brochure:    "Simulations_Brochure.pdf",
			Pricing:     "₹900 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=simulationsoverview",
		},
		"E2MP": {
			Name:        "E2MP (Education to Market Place)",
			Description: "Program connecting education with real-world market skills",
			Brochure:    "E2MP_Brochure.pdf",
			Pricing:     "₹1,500 per student (annual subscription)",
			Video:       "https://www.youtube.com/watch?v=e2mpoverview",
		},
		"Franchise Proposal": {
			Name:        "EduRishi Franchise Opportunity",
			Description: "Become an EduRishi franchise partner and expand educational reach",
			Brochure:    "Franchise_Proposal.pdf",
			Pricing:     "Starting from ₹5,00,000 (investment)",
			Video:       "https://www.youtube.com/watch?v=franchiseoverview",
		},
		"Tech Franchise": {
			Name:        "Technology Franchise",
			Description: "Franchise focused on technology education and AI integration",
			Brochure:    "Tech_Franchise_Brochure.pdf",
			Pricing:     "Starting from ₹7,50,000 (investment)",
			Video:       "https://www.youtube.com/watch?v=techfranchiseoverview",
		},
		"Entrepreneurship_Workshop": {
			Name:        "Entrepreneurship Workshop",
			Description: "Workshops focused on developing entrepreneurial skills",
			Brochure:    "Entrepreneurship_Workshop_Brochure.pdf",
			Pricing:     "₹20,000 per workshop (up to 30 participants)",
			Video:       "https://www.youtube.com/watch?v=entrepreneurshipoverview",
		},
	}
}

// LoadCatalog reads a catalog override from a YAML file keyed by product
// code. Entries replace or extend the built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "recommend: read catalog %s", path)
	}

	var wrapper struct {
		Products Catalog `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "recommend: parse catalog")
	}

	catalog := DefaultCatalog()
	for code, p := range wrapper.Products {
		catalog[code] = p
	}
	return catalog, nil
}
