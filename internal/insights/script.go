package insights

import (
	"fmt"
	"strings"
)

// SalesScript builds a call-script template personalized with the customer's
// name, profession, and stated interests.
func SalesScript(p Profile) string {
	name := p.Name
	if name == "" {
		name = "Customer"
	}
	profession := p.Profession
	if profession == "" {
		profession = "professional"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# EDURISHI EDUVENTURES Sales Script for %s\n\n", name)

	b.WriteString("## Introduction\n")
	fmt.Fprintf(&b, "\"Hello %s, this is [Your Name] from EDURISHI EDUVENTURES PVT LTD. "+
		"Thank you for your interest in our educational solutions for %ss.\"\n\n", name, profession)

	b.WriteString("## Value Proposition\n")
	fmt.Fprintf(&b, "\"At EDURISHI, we specialize in helping %ss like yourself enhance their "+
		"skills and advance their careers through our tailored educational programs.\"\n\n", profession)

	b.WriteString("## Addressing Interests\n")
	if p.Interests != "" {
		fmt.Fprintf(&b, "\"I noticed you have an interest in %s. Our educational solutions can "+
			"help you develop expertise in these areas by providing structured learning paths "+
			"and industry-relevant content.\"\n\n", p.Interests)
	}

	b.WriteString("## Overcoming Objections\n")
	b.WriteString("\"I understand your concerns about [objection]. Many of our students initially " +
		"felt the same way, but they found that our flexible learning options and expert " +
		"instructors made the process much easier than expected.\"\n\n")

	b.WriteString("## Call to Action\n")
	b.WriteString("\"Would you be interested in scheduling a free consultation to discuss how our " +
		"programs can be tailored to your specific career goals?\"\n")

	return b.String()
}
