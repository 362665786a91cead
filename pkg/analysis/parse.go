package analysis

import (
	"regexp"
	"strings"

	"punchline/pkg/apperr"
)

// Unavailable is recorded for every section the model output did not cover.
const Unavailable = "Not available"

var (
	// two or more line breaks, tolerating whitespace-only lines between them
	paragraphRX = regexp.MustCompile(`\n[ \t]*\n\s*`)
	emphasisRX  = regexp.MustCompile(`\*\*|__`)
	listItemRX  = regexp.MustCompile(`^(?:\d+[.)]|[-*•])\s`)
	bulletRX    = regexp.MustCompile(`^[-*•]\s`)
	ordinalRX   = regexp.MustCompile(`^(?:\d+[.)]\s*|[-*•]\s+)`)
)

// separators split a unit into its label and content. The earliest match
// wins.
var separators = []string{": ", ":\n"}

// Parse reduces one free-form analysis into a Record. It only fails when raw
// is blank; anything else degrades to a partially filled record, with the
// uncovered sections set to Unavailable.
//
// The text is segmented on blank lines, or line by line when that yields
// fewer than two blocks. Each unit either opens a section ("3. Style
// Elements: ..." or a bare "Strengths" heading) or continues the one opened
// last. Only units without a label continue a section: list items always,
// plain prose only under a heading that carried no inline content. Units
// with an unknown label are dropped.
func Parse(raw string) (Record, error) {
	if strings.TrimSpace(raw) == "" {
		return Record{}, apperr.Invalid("analysis text is empty")
	}

	p := parser{current: -1}
	for _, unit := range segment(normalize(raw)) {
		p.visit(unit)
	}

	r := Record{raw: raw}
	for _, s := range Sections {
		r.sections[s] = Unavailable
		if v := strings.TrimSpace(p.sections[s]); v != "" {
			r.sections[s] = v
		}
	}
	r.suggestions = Suggestions(r.sections[FeedbackSuggestions])
	return r, nil
}

type parser struct {
	sections [sectionCount]string
	seen     [sectionCount]bool
	current  Section
	// claims is set while the open section's heading had no inline content,
	// so the plain lines below it belong to it.
	claims bool
}

func (p *parser) visit(block string) {
	for _, unit := range p.split(block) {
		p.visitUnit(unit)
	}
}

func (p *parser) visitUnit(unit string) {
	if s, content, ok := heading(unit); ok {
		// a repeated section keeps its last occurrence
		p.sections[s] = content
		p.seen[s] = true
		p.current, p.claims = s, content == ""
		return
	}
	if !p.current.valid() {
		return
	}
	if _, _, labeled := cutSeparator(unit); labeled {
		return
	}
	if p.claims || listItemRX.MatchString(unit) {
		p.sections[p.current] = appendLine(p.sections[p.current], unit)
	}
}

// split breaks a block before every later line that opens a section of its
// own: single-spaced sections sharing one block, often behind a preamble.
// Bulleted lines and sections already opened never split, so labelled
// points nested under a heading stay in it.
func (p *parser) split(block string) []string {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return []string{block}
	}
	opened := p.seen
	if s, _, ok := heading(block); ok {
		opened[s] = true
	}

	var units []string
	start := 0
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if bulletRX.MatchString(line) {
			continue
		}
		s, _, ok := heading(line)
		if !ok || opened[s] {
			continue
		}
		opened[s] = true
		units = append(units, strings.Join(lines[start:i], "\n"))
		start = i
	}
	units = append(units, strings.Join(lines[start:], "\n"))
	return nonEmpty(units)
}

// Suggestions splits feedback-suggestion content into one entry per
// non-blank line with its ordinal or bullet marker removed.
func Suggestions(content string) []string {
	out := []string{}
	if content == Unavailable {
		return out
	}
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(ordinalRX.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = emphasisRX.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func segment(text string) []string {
	if blocks := nonEmpty(paragraphRX.Split(text, -1)); len(blocks) >= 2 {
		return blocks
	}
	return nonEmpty(strings.Split(text, "\n"))
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// heading reports whether unit opens a section, and the content following
// its label.
func heading(unit string) (Section, string, bool) {
	if label, content, ok := cutSeparator(unit); ok {
		if s, known := Lookup(label); known {
			return s, content, true
		}
	}
	first, rest, _ := strings.Cut(unit, "\n")
	if s, known := Lookup(first); known {
		return s, strings.TrimSpace(rest), true
	}
	return 0, "", false
}

func cutSeparator(unit string) (label, content string, ok bool) {
	at, size := -1, 0
	for _, sep := range separators {
		if i := strings.Index(unit, sep); i >= 0 && (at < 0 || i < at) {
			at, size = i, len(sep)
		}
	}
	if at < 0 {
		return "", "", false
	}
	return unit[:at], strings.TrimSpace(unit[at+size:]), true
}

func appendLine(content, line string) string {
	if content == "" {
		return line
	}
	return content + "\n" + line
}
