package render

import (
	"regexp"
	"strings"
	"unicode"
)

// BlockKind distinguishes prose from bulleted lists inside a section body.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockBullets
)

// Block is one renderable unit of a section body.
type Block struct {
	Kind  BlockKind
	Text  string   // BlockParagraph
	Items []string // BlockBullets
}

// Header is the text before the first section marker. Name is the first
// non-blank line, Contact the second, Summary the remaining lines joined.
// A two-line name or a missing contact line is rendered positionally.
type Header struct {
	Name    string
	Contact string
	Summary string
}

// Section is a "## Title" chunk.
type Section struct {
	Title  string
	Blocks []Block
}

// Layout is the parsed form of a tailored document.
type Layout struct {
	Header   Header
	Sections []Section
}

var (
	bulletPattern    = regexp.MustCompile(`^[-*•]\s`)
	bulletStrip      = regexp.MustCompile(`^[-*•]\s*`)
	sectionMarkStrip = regexp.MustCompile(`^##\s*`)
)

// Parse splits content on lines starting with "##" followed by whitespace.
// It never fails: content without markers yields a header-only layout.
func Parse(content string) Layout {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var (
		out     Layout
		header  []string
		current []string
		inSec   bool
	)
	flush := func() {
		if inSec {
			out.Sections = append(out.Sections, parseSection(current))
		}
	}
	for _, line := range lines {
		if isSectionLine(line) {
			flush()
			current = []string{line}
			inSec = true
			continue
		}
		if inSec {
			current = append(current, line)
		} else {
			header = append(header, line)
		}
	}
	flush()

	out.Header = parseHeader(header)
	return out
}

func isSectionLine(line string) bool {
	if !strings.HasPrefix(line, "##") {
		return false
	}
	rest := line[2:]
	if rest == "" {
		return true
	}
	r := []rune(rest)[0]
	return unicode.IsSpace(r)
}

func parseHeader(lines []string) Header {
	var kept []string
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			kept = append(kept, t)
		}
	}
	var h Header
	if len(kept) > 0 {
		h.Name = kept[0]
	}
	if len(kept) > 1 {
		h.Contact = kept[1]
	}
	if len(kept) > 2 {
		h.Summary = strings.Join(kept[2:], " ")
	}
	return h
}

func parseSection(lines []string) Section {
	sec := Section{Title: strings.TrimSpace(sectionMarkStrip.ReplaceAllString(lines[0], ""))}

	var para []string
	emit := func() {
		sec.Blocks = append(sec.Blocks, paragraphBlocks(para)...)
		para = nil
	}
	for _, l := range lines[1:] {
		t := strings.TrimSpace(l)
		if t == "" {
			emit()
			continue
		}
		para = append(para, t)
	}
	emit()
	return sec
}

// paragraphBlocks splits one paragraph into a bullet list and a prose line,
// ordered by whichever appears first.
func paragraphBlocks(lines []string) []Block {
	if len(lines) == 0 {
		return nil
	}
	var (
		items       []string
		prose       []string
		bulletFirst bool
	)
	for i, l := range lines {
		if bulletPattern.MatchString(l) {
			if i == 0 {
				bulletFirst = true
			}
			items = append(items, strings.TrimSpace(bulletStrip.ReplaceAllString(l, "")))
			continue
		}
		prose = append(prose, l)
	}

	var blocks []Block
	list := Block{Kind: BlockBullets, Items: items}
	text := Block{Kind: BlockParagraph, Text: strings.Join(prose, " ")}
	if bulletFirst {
		blocks = append(blocks, list)
		if len(prose) > 0 {
			blocks = append(blocks, text)
		}
		return blocks
	}
	blocks = append(blocks, text)
	if len(items) > 0 {
		blocks = append(blocks, list)
	}
	return blocks
}
