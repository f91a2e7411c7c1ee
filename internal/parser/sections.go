// Package parser extracts typed records from the model's loosely-structured
// output. The model is non-adversarial but unreliable: nothing here assumes
// the requested format was honored, and every extraction has an explicit
// absent outcome instead of an error.
package parser

import "strings"

// sectionMarker introduces a level-2 markdown heading.
const sectionMarker = "## "

// Field is the outcome of one section lookup: the extracted body and whether
// the section was present at all. An absent field keeps its sentinel default
// downstream.
type Field struct {
	Value string
	Found bool
}

// Sections holds the section-mapped fields recognized in a response.
type Sections struct {
	CurrentPrice Field
	Fundamentals Field
	Technicals   Field
	News         Field
	DetectedName Field
}

// ParseSections splits rawText on "## " headings and maps recognized titles
// to fields. Title matching is substring-based and case-insensitive, so
// "Fundamental Analysis" still maps to Fundamentals. Unrecognized sections
// are dropped; when the same title appears twice the last one wins. Heading
// order does not matter.
func ParseSections(rawText string) Sections {
	var out Sections

	for _, chunk := range strings.Split(rawText, sectionMarker) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		lines := strings.SplitN(chunk, "\n", 2)
		title := strings.ToLower(strings.TrimSpace(lines[0]))
		body := ""
		if len(lines) > 1 {
			body = strings.TrimSpace(lines[1])
		}

		switch {
		case strings.Contains(title, "fundamental"):
			out.Fundamentals = Field{Value: body, Found: true}
		case strings.Contains(title, "technical"):
			out.Technicals = Field{Value: body, Found: true}
		case strings.Contains(title, "news"):
			out.News = Field{Value: body, Found: true}
		case strings.Contains(title, "price"):
			out.CurrentPrice = Field{Value: strings.TrimSpace(strings.ReplaceAll(body, "**", "")), Found: true}
		}
	}

	out.DetectedName = detectSubjectName(rawText)

	return out
}

// detectSubjectName scans for a "Stock Identified: <name>" line, emitted by
// the model when it identified the stock from an uploaded image.
func detectSubjectName(rawText string) Field {
	const label = "stock identified:"

	for _, line := range strings.Split(rawText, "\n") {
		idx := strings.Index(strings.ToLower(line), label)
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[idx+len(label):])
		if name != "" {
			return Field{Value: name, Found: true}
		}
	}
	return Field{}
}
