package cvfill

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/benjaminschreck/go-cvfill/pkg/docx"
)

// Typography applied to every run the renderer rebuilds.
const (
	renderFontName  = "Arial"
	renderFontSize  = 10
	renderFontColor = "000000"
	// 1.5 line spacing in twentieths of a point, auto rule.
	renderLineSpacing     = "360"
	renderLineSpacingRule = "auto"
)

var tokenRe = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// RenderReport summarizes the structural edits of one render. Row deletion
// failures are collected here instead of aborting the document.
type RenderReport struct {
	ParagraphsRemoved int
	RowsRemoved       int
	RowFailures       []RowDeletionError
}

// Renderer applies one Resolution to a parsed document. A Renderer is cheap
// and single-use; build one per document.
type Renderer struct {
	res    Resolution
	log    *zap.Logger
	report RenderReport
}

// NewRenderer builds a renderer for the given resolution. A nil logger
// disables logging.
func NewRenderer(res Resolution, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{res: res, log: log}
}

// RenderDocument substitutes tokens, prunes empty sections and applies the
// uniform typography, mutating doc in place.
func (r *Renderer) RenderDocument(doc *docx.Document) *RenderReport {
	r.renderBody(doc.Body)
	for ti, table := range doc.Body.Tables() {
		r.renderTable(ti, table)
	}
	return &r.report
}

func (r *Renderer) renderBody(body *docx.Body) {
	kept := body.Elements[:0]
	for _, el := range body.Elements {
		p, ok := el.(*docx.Paragraph)
		if !ok {
			kept = append(kept, el)
			continue
		}
		if r.renderParagraph(p) {
			r.report.ParagraphsRemoved++
			continue
		}
		kept = append(kept, el)
	}
	body.Elements = kept
}

// segment is a span of substituted text with its bold flag.
type segment struct {
	text string
	bold bool
}

// substitute applies the token mapping to text. It returns the substituted
// spans plus flags for structural sentinels and whether any token matched.
func (r *Renderer) substitute(text string) (segs []segment, sawSection, sawLine, matched bool) {
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			segs = append(segs, segment{text: plain.String()})
			plain.Reset()
		}
	}

	last := 0
	for _, loc := range tokenRe.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		repl, ok := r.res.Replacements[token]
		if !ok {
			// Beyond-capacity or unknown token: the braces stay visible.
			plain.WriteString(text[last:loc[1]])
			last = loc[1]
			continue
		}
		plain.WriteString(text[last:loc[0]])
		last = loc[1]
		matched = true

		switch repl.Kind {
		case ReplaceLiteral:
			plain.WriteString(repl.Text)
		case ReplaceBold:
			flush()
			segs = append(segs, segment{text: repl.Text, bold: true})
		case DeleteLine:
			sawLine = true
		case DeleteSection:
			sawSection = true
		}
	}
	plain.WriteString(text[last:])
	flush()
	return segs, sawSection, sawLine, matched
}

func joinSegments(segs []segment) string {
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// renderParagraph handles one body paragraph. It reports whether the
// paragraph should be removed.
func (r *Renderer) renderParagraph(p *docx.Paragraph) (remove bool) {
	segs, sawSection, sawLine, matched := r.substitute(p.GetText())
	if sawSection {
		return true
	}
	full := joinSegments(segs)
	if sawLine {
		trimmed := strings.TrimSpace(full)
		if trimmed == "" || trimmed == "-" || trimmed == "•" {
			return true
		}
	}
	if !matched && !sawLine {
		return false
	}
	if strings.TrimSpace(full) == "-" {
		return true
	}
	r.rebuild(p, segs, full)
	return false
}

// rebuild replaces the paragraph content with freshly formatted runs.
func (r *Renderer) rebuild(p *docx.Paragraph, segs []segment, full string) {
	var runs []*docx.Run
	if hasBoldSegment(segs) {
		for _, s := range segs {
			if s.text == "" {
				continue
			}
			runs = append(runs, newRun(s.text, s.bold))
		}
	} else {
		runs = lineRuns(full)
	}
	p.SetRuns(runs)
	p.SetLineSpacing(renderLineSpacing, renderLineSpacingRule)
}

func hasBoldSegment(segs []segment) bool {
	for _, s := range segs {
		if s.bold {
			return true
		}
	}
	return false
}

// lineRuns builds the runs for a single line of plain text. Project heading
// lines ("Project Name: ... Location: ...") render fully bold with any
// leading bullet marker stripped.
func lineRuns(line string) []*docx.Run {
	if isProjectHeading(line) {
		text := line
		if strings.HasPrefix(strings.TrimSpace(text), "• ") {
			text = strings.Replace(text, "• ", "", 1)
		}
		return []*docx.Run{newRun(text, true)}
	}
	return []*docx.Run{newRun(line, false)}
}

func isProjectHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "Project Name:") && strings.Contains(trimmed, "Location:")
}

func newRun(text string, bold bool) *docx.Run {
	props := &docx.RunProperties{
		Fonts:  &docx.Fonts{ASCII: renderFontName, HAnsi: renderFontName},
		Color:  &docx.Color{Val: renderFontColor},
		Size:   &docx.Size{Val: docx.HalfPoints(renderFontSize)},
		SizeCs: &docx.Size{Val: docx.HalfPoints(renderFontSize)},
	}
	if bold {
		props.Bold = &docx.Toggle{}
	}
	return docx.NewTextRun(text, props)
}

// renderTable prunes rows whose experience slot has no data, fills the
// surviving cells, then removes the queued rows bottom-up so earlier indices
// stay valid.
func (r *Renderer) renderTable(tableIndex int, table *docx.Table) {
	var deadRows []int
	dead := make(map[int]bool)
	for ri, row := range table.Rows {
		rowText := row.GetText()
		for slot := 1; slot <= MaxExperiences; slot++ {
			if MentionsExperienceSlot(rowText, slot) && !r.res.FilledSlots[slot] {
				deadRows = append(deadRows, ri)
				dead[ri] = true
				break
			}
		}
	}

	for ri, row := range table.Rows {
		if dead[ri] {
			continue
		}
		for _, cell := range row.Cells {
			r.renderCell(cell)
		}
	}

	for i := len(deadRows) - 1; i >= 0; i-- {
		ri := deadRows[i]
		if err := table.RemoveRow(ri); err != nil {
			failure := RowDeletionError{TableIndex: tableIndex, RowIndex: ri, Err: err}
			r.report.RowFailures = append(r.report.RowFailures, failure)
			r.log.Warn("could not delete table row",
				zap.Int("table", tableIndex),
				zap.Int("row", ri),
				zap.Error(err))
			continue
		}
		r.report.RowsRemoved++
	}
}

// renderCell applies paragraph rendering inside a cell, additionally
// exploding multi-line values into one paragraph per line.
func (r *Renderer) renderCell(cell *docx.TableCell) {
	var kept []docx.CellChild
	for _, child := range cell.Children {
		p, ok := child.(*docx.Paragraph)
		if !ok {
			kept = append(kept, child)
			continue
		}

		segs, sawSection, sawLine, matched := r.substitute(p.GetText())
		if sawSection {
			// Row-level scanning already queued this row when possible;
			// a stray section sentinel in a surviving row keeps the
			// paragraph untouched, mirroring the row-first contract.
			kept = append(kept, child)
			continue
		}
		full := joinSegments(segs)
		if sawLine {
			trimmed := strings.TrimSpace(full)
			if trimmed == "" || trimmed == "-" || trimmed == "•" {
				r.report.ParagraphsRemoved++
				continue
			}
		}
		if !matched && !sawLine {
			kept = append(kept, child)
			continue
		}
		if strings.TrimSpace(full) == "-" {
			r.report.ParagraphsRemoved++
			continue
		}

		if !hasBoldSegment(segs) && strings.Contains(full, "\n") {
			for i, line := range strings.Split(full, "\n") {
				target := p
				if i > 0 {
					target = &docx.Paragraph{}
				}
				target.SetRuns(lineRuns(line))
				target.SetLineSpacing(renderLineSpacing, renderLineSpacingRule)
				kept = append(kept, target)
			}
			continue
		}

		r.rebuild(p, segs, full)
		kept = append(kept, p)
	}
	cell.Children = kept
}
