// Package export renders a validated Resume document into a flat
// plain-text representation with a fixed section order.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resumepilot/internal/schema"
)

// bulletMarker prefixes each achievement line under an experience entry.
const bulletMarker = "• "

// RenderPlainText renders a resume document as plain text. Rendering is
// total: missing fields degrade to empty strings and empty sections are
// omitted rather than erroring.
func RenderPlainText(resume schema.Document) string {
	var sb strings.Builder

	renderContact(&sb, record(resume, "contact"))

	if summary := str(resume, "summary"); summary != "" {
		sb.WriteString("PROFESSIONAL SUMMARY\n")
		sb.WriteString(summary)
		sb.WriteString("\n\n")
	}

	if experience := records(resume, "experience"); len(experience) > 0 {
		sb.WriteString("EXPERIENCE\n")
		for _, exp := range experience {
			sb.WriteString("\n")
			fmt.Fprintf(&sb, "%s | %s\n", str(exp, "position"), str(exp, "company"))
			fmt.Fprintf(&sb, "%s - %s | %s\n", str(exp, "startDate"), str(exp, "endDate"), str(exp, "location"))
			for _, bullet := range stringList(exp, "bullets") {
				sb.WriteString(bulletMarker)
				sb.WriteString(bullet)
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	if education := records(resume, "education"); len(education) > 0 {
		sb.WriteString("EDUCATION\n")
		for _, edu := range education {
			fmt.Fprintf(&sb, "%s in %s\n", str(edu, "degree"), str(edu, "field"))
			fmt.Fprintf(&sb, "%s | %s\n", str(edu, "institution"), str(edu, "graduationDate"))
		}
		sb.WriteString("\n")
	}

	renderSkills(&sb, record(resume, "skills"))

	if projects := records(resume, "projects"); sectionPresent(projects) {
		sb.WriteString("PROJECTS\n")
		for _, proj := range projects {
			sb.WriteString(str(proj, "name"))
			sb.WriteString("\n")
			if desc := str(proj, "description"); desc != "" {
				sb.WriteString(desc)
				sb.WriteString("\n")
			}
			if techs := stringList(proj, "technologies"); len(techs) > 0 {
				fmt.Fprintf(&sb, "Technologies: %s\n", strings.Join(techs, ", "))
			}
		}
		sb.WriteString("\n")
	}

	if certs := records(resume, "certifications"); sectionPresent(certs) {
		sb.WriteString("CERTIFICATIONS\n")
		for _, cert := range certs {
			fmt.Fprintf(&sb, "%s - %s (%s)\n", str(cert, "name"), str(cert, "issuer"), str(cert, "date"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderContact(sb *strings.Builder, contact map[string]any) {
	sb.WriteString(str(contact, "name"))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s | %s\n", str(contact, "email"), str(contact, "phone"))
	sb.WriteString(str(contact, "location"))
	sb.WriteString("\n\n")
}

func renderSkills(sb *strings.Builder, skills map[string]any) {
	technical := stringList(skills, "technical")
	tools := stringList(skills, "tools")
	soft := stringList(skills, "soft")
	if len(technical) == 0 && len(tools) == 0 && len(soft) == 0 {
		return
	}

	sb.WriteString("SKILLS\n")
	if len(technical) > 0 {
		fmt.Fprintf(sb, "Technical: %s\n", strings.Join(technical, ", "))
	}
	if len(tools) > 0 {
		fmt.Fprintf(sb, "Tools: %s\n", strings.Join(tools, ", "))
	}
	if len(soft) > 0 {
		fmt.Fprintf(sb, "Soft: %s\n", strings.Join(soft, ", "))
	}
	sb.WriteString("\n")
}

// sectionPresent reports whether an optional section (projects,
// certifications) should render: non-empty and the first entry has a name.
// An all-blank first entry means the section was never filled in.
func sectionPresent(entries []map[string]any) bool {
	return len(entries) > 0 && str(entries[0], "name") != ""
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func record(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	r, _ := m[key].(map[string]any)
	return r
}

func records(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	arr, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, elem := range arr {
		if r, ok := elem.(map[string]any); ok {
			out = append(out, r)
		}
	}
	return out
}

func stringList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	arr, _ := m[key].([]any)
	out := make([]string, 0, len(arr))
	for _, elem := range arr {
		if s, ok := elem.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
