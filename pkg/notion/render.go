package notion

import "strings"

// PlainText renders blocks as indented plain text. Headings, paragraphs,
// list items and to-dos are kept; other block types are skipped but their
// children are still rendered one level deeper.
func PlainText(blocks []Block) string {
	var lines []string
	walk(blocks, 0, &lines)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func walk(blocks []Block, depth int, lines *[]string) {
	indent := strings.Repeat("  ", depth)
	for _, b := range blocks {
		if line, ok := blockLine(b); ok {
			*lines = append(*lines, indent+line)
		}
		if len(b.Children) > 0 {
			walk(b.Children, depth+1, lines)
		}
	}
}

func blockLine(b Block) (string, bool) {
	text := b.Text()
	switch b.Type {
	case "heading_1":
		return "# " + text, true
	case "heading_2":
		return "## " + text, true
	case "heading_3":
		return "### " + text, true
	}

	if text == "" {
		return "", false
	}
	switch b.Type {
	case "paragraph":
		return text, true
	case "bulleted_list_item":
		return "- " + text, true
	case "numbered_list_item":
		return "1) " + text, true
	case "to_do":
		return "- [ ] " + text, true
	}
	return "", false
}

// Truncate cuts s to at most maxChars runes. Non-positive maxChars disables it.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	return string(r[:maxChars])
}
