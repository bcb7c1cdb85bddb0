package ocr

import (
	"log"
	"regexp"
	"strings"
)

// maxMenuTextLen caps what the classifier sees. A restaurant menu fits
// comfortably; anything longer is OCR noise or a scanned wine catalog.
const maxMenuTextLen = 15000

var (
	pageNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*page\s*\d+\s*$`),
		regexp.MustCompile(`^\s*\d+\s*/\s*\d+\s*$`),
		regexp.MustCompile(`^\s*\d+\s*$`),
		regexp.MustCompile(`(?i)^\s*(la\s+)?carte\s*$`),
		regexp.MustCompile(`(?i)^\s*menu\s*$`),
	}
	priceLike = regexp.MustCompile(`^[€$£]?\d+[,.]?\d*\s*€?$`)
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanMenuText normalizes raw OCR output before classification: page
// furniture out, whitespace collapsed, artifacts stripped, length capped.
func CleanMenuText(rawText string) string {
	if rawText == "" {
		return rawText
	}

	text := strings.ReplaceAll(rawText, "\f", "\n")
	text = removePageFurniture(text)
	text = normalizeWhitespace(text)
	text = removeArtifacts(text)

	if len(text) > maxMenuTextLen {
		truncated := text[:maxMenuTextLen]
		// cut at a paragraph break when one is near enough
		if i := strings.LastIndex(truncated, "\n\n"); i > maxMenuTextLen/2 {
			truncated = truncated[:i]
		}
		log.Printf("ocr: menu text truncated from %d to %d chars", len(text), len(truncated))
		text = truncated
	}
	return text
}

func removePageFurniture(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		remove := false
		for _, p := range pageNumberPatterns {
			if p.MatchString(trimmed) {
				remove = true
				break
			}
		}
		// very short lines are noise unless they look like a price
		if !remove && trimmed != "" && len(trimmed) < 3 && !priceLike.MatchString(trimmed) {
			remove = true
		}
		if !remove {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func normalizeWhitespace(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func removeArtifacts(text string) string {
	for _, artifact := range []string{"��", "�", "©", "™", "®"} {
		text = strings.ReplaceAll(text, artifact, "")
	}
	return text
}
