package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// BodyElement is a top-level element of the document body.
type BodyElement interface {
	isBodyElement()
}

// Document is the parsed word/document.xml. Root attributes (the namespace
// declarations Word emits) are preserved verbatim.
type Document struct {
	Attrs []xml.Attr
	Body  *Body
}

// Body holds paragraphs and tables in document order. The trailing section
// properties are opaque to us and round-trip as raw XML.
type Body struct {
	Elements []BodyElement
	SectPr   *RawElement
}

// Paragraphs returns the body's top-level paragraphs in document order.
func (b *Body) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range b.Elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the body's top-level tables in document order.
func (b *Body) Tables() []*Table {
	var tables []*Table
	for _, el := range b.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

func (doc *Document) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	doc.Attrs = start.Attr
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
			if t.Name.Local == "body" {
				var body Body
				if err := d.DecodeElement(&body, &t); err != nil {
					return err
				}
				doc.Body = &body
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
	return nil
}

func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &table)
			case "sectPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				b.SectPr = &raw
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
	return nil
}

// Parse reads a word/document.xml stream into a Document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing document xml: %w", err)
	}
	if doc.Body == nil {
		return nil, fmt.Errorf("document has no body")
	}
	return &doc, nil
}

// ParseBytes parses word/document.xml from a byte slice.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// XML serializes the document back to word/document.xml form.
func (doc *Document) XML() []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	writeStartTag(&b, "w:document", doc.Attrs)
	b.WriteString("<w:body>")
	if doc.Body != nil {
		for _, el := range doc.Body.Elements {
			switch e := el.(type) {
			case *Paragraph:
				e.writeXML(&b)
			case *Table:
				e.writeXML(&b)
			}
		}
		if doc.Body.SectPr != nil {
			doc.Body.SectPr.writeXML(&b)
		}
	}
	b.WriteString("</w:body></w:document>")
	return b.Bytes()
}

// Text extracts the plain text of the document: one line per paragraph,
// table cells separated by tabs.
func (doc *Document) Text() string {
	var sb strings.Builder
	for _, el := range doc.Body.Elements {
		switch e := el.(type) {
		case *Paragraph:
			sb.WriteString(e.GetText())
			sb.WriteByte('\n')
		case *Table:
			for _, row := range e.Rows {
				for i, cell := range row.Cells {
					if i > 0 {
						sb.WriteByte('\t')
					}
					sb.WriteString(cell.GetText())
				}
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
