package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// ParagraphChild is anything that can sit inside w:p after the properties:
// a run, or a preserved raw element (hyperlinks, bookmarks, proofing marks).
type ParagraphChild interface {
	isParagraphChild()
}

func (r *RawElement) isParagraphChild() {}
func (r *RawElement) isCellChild()      {}

// Paragraph is the w:p element.
type Paragraph struct {
	Properties *ParagraphProperties
	Children   []ParagraphChild
}

func (p *Paragraph) isBodyElement() {}
func (p *Paragraph) isCellChild()   {}

// Runs returns the runs of the paragraph in document order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, child := range p.Children {
		if r, ok := child.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// GetText concatenates the text of all runs.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.GetText())
	}
	return sb.String()
}

// SetRuns replaces the paragraph content with the given runs. Raw children
// are dropped along with the old runs; paragraph properties stay.
func (p *Paragraph) SetRuns(runs []*Run) {
	p.Children = p.Children[:0]
	for _, r := range runs {
		p.Children = append(p.Children, r)
	}
}

func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				var props ParagraphProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				p.Properties = &props
			case "r":
				var run Run
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, &run)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Children = append(p.Children, &raw)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return nil
			}
		}
	}
	return nil
}

func (p *Paragraph) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:p>")
	if p.Properties != nil {
		p.Properties.writeXML(b)
	}
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			c.writeXML(b)
		case *RawElement:
			c.writeXML(b)
		}
	}
	b.WriteString("</w:p>")
}

// ParagraphProperties models the paragraph formatting the renderer touches.
// Everything else (numbering, borders, keep rules) round-trips as raw XML in
// its original position relative to the style reference.
type ParagraphProperties struct {
	Style         *Style
	Spacing       *Spacing
	Indentation   *RawElement
	Alignment     *Alignment
	RunProperties *RunProperties
	Raw           []RawElement
}

func (p *ParagraphProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				p.Style = &Style{Val: attrValue(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "spacing":
				p.Spacing = decodeSpacing(t)
				if err := d.Skip(); err != nil {
					return err
				}
			case "ind":
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Indentation = &raw
			case "jc":
				p.Alignment = &Alignment{Val: attrValue(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "rPr":
				var props RunProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				p.RunProperties = &props
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Raw = append(p.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				return nil
			}
		}
	}
	return nil
}

func (p *ParagraphProperties) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:pPr>")
	if p.Style != nil {
		b.WriteString(`<w:pStyle w:val="`)
		writeEscaped(b, p.Style.Val)
		b.WriteString(`"/>`)
	}
	for i := range p.Raw {
		p.Raw[i].writeXML(b)
	}
	if p.Spacing != nil {
		p.Spacing.writeXML(b)
	}
	if p.Indentation != nil {
		p.Indentation.writeXML(b)
	}
	if p.Alignment != nil {
		b.WriteString(`<w:jc w:val="`)
		writeEscaped(b, p.Alignment.Val)
		b.WriteString(`"/>`)
	}
	if p.RunProperties != nil {
		p.RunProperties.writeXML(b)
	}
	b.WriteString("</w:pPr>")
}

// SetLineSpacing sets the paragraph line spacing, creating properties as
// needed. Existing before/after spacing is kept.
func (p *Paragraph) SetLineSpacing(line, rule string) {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	if p.Properties.Spacing == nil {
		p.Properties.Spacing = &Spacing{}
	}
	p.Properties.Spacing.Line = line
	p.Properties.Spacing.LineRule = rule
}

// Style is a style reference such as w:pStyle.
type Style struct {
	Val string
}

// Alignment is the w:jc element.
type Alignment struct {
	Val string
}

// Spacing is the w:spacing element. Attribute values are kept as strings so
// an explicit "0" survives the round trip.
type Spacing struct {
	Before   string
	After    string
	Line     string
	LineRule string
}

func decodeSpacing(start xml.StartElement) *Spacing {
	return &Spacing{
		Before:   attrValue(start, "before"),
		After:    attrValue(start, "after"),
		Line:     attrValue(start, "line"),
		LineRule: attrValue(start, "lineRule"),
	}
}

func (s *Spacing) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:spacing")
	if s.Before != "" {
		b.WriteString(` w:before="`)
		writeEscaped(b, s.Before)
		b.WriteByte('"')
	}
	if s.After != "" {
		b.WriteString(` w:after="`)
		writeEscaped(b, s.After)
		b.WriteByte('"')
	}
	if s.Line != "" {
		b.WriteString(` w:line="`)
		writeEscaped(b, s.Line)
		b.WriteByte('"')
	}
	if s.LineRule != "" {
		b.WriteString(` w:lineRule="`)
		writeEscaped(b, s.LineRule)
		b.WriteByte('"')
	}
	b.WriteString("/>")
}
