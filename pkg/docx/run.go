package docx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

// Run is a text run. A run carries at most one text node and one break; the
// renderer rebuilds runs wholesale, so richer run content (drawings, fields)
// is preserved as raw XML.
type Run struct {
	Properties *RunProperties
	Text       *Text
	Break      *Break
	Tab        bool
	Raw        []RawElement
}

func (r *Run) isParagraphChild() {}

// NewTextRun builds a run holding the given text with the given properties.
func NewTextRun(text string, props *RunProperties) *Run {
	return &Run{Properties: props, Text: NewText(text)}
}

// GetText returns the text content of the run, or "" for text-free runs.
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Content
}

func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "rPr":
				var props RunProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				r.Properties = &props
			case "t":
				var text Text
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				if r.Text == nil {
					r.Text = &text
				} else {
					r.Text.Content += text.Content
				}
			case "br":
				var br Break
				if err := d.DecodeElement(&br, &t); err != nil {
					return err
				}
				r.Break = &br
			case "tab":
				r.Tab = true
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				r.Raw = append(r.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return nil
			}
		}
	}
	return nil
}

func (r *Run) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:r>")
	if r.Properties != nil {
		r.Properties.writeXML(b)
	}
	if r.Tab {
		b.WriteString("<w:tab/>")
	}
	if r.Text != nil {
		r.Text.writeXML(b)
	}
	if r.Break != nil {
		r.Break.writeXML(b)
	}
	for i := range r.Raw {
		r.Raw[i].writeXML(b)
	}
	b.WriteString("</w:r>")
}

// RunProperties models the run formatting the renderer reads and writes.
// Properties outside that set round-trip as raw XML.
type RunProperties struct {
	Bold   *Toggle
	Italic *Toggle
	Fonts  *Fonts
	Color  *Color
	Size   *Size
	SizeCs *Size
	Raw    []RawElement
}

// IsBold reports whether the run is bold. An explicit w:val of "0" or
// "false" turns the toggle off.
func (p *RunProperties) IsBold() bool {
	return p != nil && p.Bold != nil && p.Bold.On()
}

func (p *RunProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "b":
				p.Bold = decodeToggle(t)
				if err := d.Skip(); err != nil {
					return err
				}
			case "i":
				p.Italic = decodeToggle(t)
				if err := d.Skip(); err != nil {
					return err
				}
			case "rFonts":
				p.Fonts = decodeFonts(t)
				if err := d.Skip(); err != nil {
					return err
				}
			case "color":
				p.Color = &Color{Val: attrValue(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "sz":
				p.Size = &Size{Val: attrValue(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "szCs":
				p.SizeCs = &Size{Val: attrValue(t, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Raw = append(p.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "rPr" {
				return nil
			}
		}
	}
	return nil
}

func (p *RunProperties) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:rPr>")
	if p.Fonts != nil {
		p.Fonts.writeXML(b)
	}
	if p.Bold != nil {
		p.Bold.writeXML(b, "w:b")
	}
	if p.Italic != nil {
		p.Italic.writeXML(b, "w:i")
	}
	if p.Color != nil {
		b.WriteString(`<w:color w:val="`)
		writeEscaped(b, p.Color.Val)
		b.WriteString(`"/>`)
	}
	if p.Size != nil {
		b.WriteString(`<w:sz w:val="`)
		writeEscaped(b, p.Size.Val)
		b.WriteString(`"/>`)
	}
	if p.SizeCs != nil {
		b.WriteString(`<w:szCs w:val="`)
		writeEscaped(b, p.SizeCs.Val)
		b.WriteString(`"/>`)
	}
	for i := range p.Raw {
		p.Raw[i].writeXML(b)
	}
	b.WriteString("</w:rPr>")
}

// Toggle is an on/off run property such as w:b.
type Toggle struct {
	Val string
}

func (t *Toggle) On() bool {
	return t.Val != "0" && t.Val != "false"
}

func (t *Toggle) writeXML(b *bytes.Buffer, name string) {
	b.WriteByte('<')
	b.WriteString(name)
	if t.Val != "" {
		b.WriteString(` w:val="`)
		writeEscaped(b, t.Val)
		b.WriteByte('"')
	}
	b.WriteString("/>")
}

func decodeToggle(start xml.StartElement) *Toggle {
	return &Toggle{Val: attrValue(start, "val")}
}

// Fonts is the w:rFonts element.
type Fonts struct {
	ASCII string
	HAnsi string
	CS    string
}

func decodeFonts(start xml.StartElement) *Fonts {
	return &Fonts{
		ASCII: attrValue(start, "ascii"),
		HAnsi: attrValue(start, "hAnsi"),
		CS:    attrValue(start, "cs"),
	}
}

func (f *Fonts) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:rFonts")
	if f.ASCII != "" {
		b.WriteString(` w:ascii="`)
		writeEscaped(b, f.ASCII)
		b.WriteByte('"')
	}
	if f.HAnsi != "" {
		b.WriteString(` w:hAnsi="`)
		writeEscaped(b, f.HAnsi)
		b.WriteByte('"')
	}
	if f.CS != "" {
		b.WriteString(` w:cs="`)
		writeEscaped(b, f.CS)
		b.WriteByte('"')
	}
	b.WriteString("/>")
}

// Color is the w:color element.
type Color struct {
	Val string
}

// Size is a font size in half-points, kept as the attribute string.
type Size struct {
	Val string
}

// HalfPoints renders a point size as the half-point value w:sz expects.
func HalfPoints(points int) string {
	return strconv.Itoa(points * 2)
}

// Text is the w:t element.
type Text struct {
	Space   string
	Content string
}

func NewText(content string) *Text {
	t := &Text{Content: content}
	if needsSpacePreserve(content) {
		t.Space = "preserve"
	}
	return t
}

func needsSpacePreserve(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == ' ' || s[len(s)-1] == ' '
}

func (t *Text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "space" {
			t.Space = attr.Value
		}
	}
	var content string
	if err := d.DecodeElement(&content, &start); err != nil {
		return err
	}
	t.Content = content
	return nil
}

func (t *Text) writeXML(b *bytes.Buffer) {
	if t.Space == "preserve" || needsSpacePreserve(t.Content) {
		b.WriteString(`<w:t xml:space="preserve">`)
	} else {
		b.WriteString("<w:t>")
	}
	writeEscaped(b, t.Content)
	b.WriteString("</w:t>")
}

// Break is the w:br element.
type Break struct {
	Type string
}

func (br *Break) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	br.Type = attrValue(start, "type")
	return d.Skip()
}

func (br *Break) writeXML(b *bytes.Buffer) {
	if br.Type != "" {
		b.WriteString(`<w:br w:type="`)
		writeEscaped(b, br.Type)
		b.WriteString(`"/>`)
	} else {
		b.WriteString("<w:br/>")
	}
}

func attrValue(start xml.StartElement, local string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
