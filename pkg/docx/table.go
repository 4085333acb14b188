package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Table is the w:tbl element. Table-level and row-level properties are never
// edited, so they round-trip as raw XML.
type Table struct {
	Properties *RawElement
	Grid       *RawElement
	Rows       []*TableRow
}

func (t *Table) isBodyElement() {}

func (t *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tblPr":
				raw, err := captureRaw(d, el)
				if err != nil {
					return err
				}
				t.Properties = &raw
			case "tblGrid":
				raw, err := captureRaw(d, el)
				if err != nil {
					return err
				}
				t.Grid = &raw
			case "tr":
				var row TableRow
				if err := d.DecodeElement(&row, &el); err != nil {
					return err
				}
				t.Rows = append(t.Rows, &row)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name.Local == "tbl" {
				return nil
			}
		}
	}
	return nil
}

func (t *Table) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:tbl>")
	if t.Properties != nil {
		t.Properties.writeXML(b)
	}
	if t.Grid != nil {
		t.Grid.writeXML(b)
	}
	for _, row := range t.Rows {
		row.writeXML(b)
	}
	b.WriteString("</w:tbl>")
}

// RemoveRow deletes the row at the given index.
func (t *Table) RemoveRow(index int) error {
	if index < 0 || index >= len(t.Rows) {
		return fmt.Errorf("row index %d out of range (table has %d rows)", index, len(t.Rows))
	}
	t.Rows = append(t.Rows[:index], t.Rows[index+1:]...)
	return nil
}

// TableRow is the w:tr element.
type TableRow struct {
	Properties *RawElement
	Cells      []*TableCell
}

func (r *TableRow) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "trPr":
				raw, err := captureRaw(d, el)
				if err != nil {
					return err
				}
				r.Properties = &raw
			case "tc":
				var cell TableCell
				if err := d.DecodeElement(&cell, &el); err != nil {
					return err
				}
				r.Cells = append(r.Cells, &cell)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name.Local == "tr" {
				return nil
			}
		}
	}
	return nil
}

func (r *TableRow) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:tr>")
	if r.Properties != nil {
		r.Properties.writeXML(b)
	}
	for _, cell := range r.Cells {
		cell.writeXML(b)
	}
	b.WriteString("</w:tr>")
}

// GetText concatenates the text of every cell in the row, cells separated by
// a space so tokens in adjacent cells do not run together.
func (r *TableRow) GetText() string {
	var parts []string
	for _, cell := range r.Cells {
		if text := cell.GetText(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// CellChild is anything inside w:tc after the properties: a paragraph, or a
// preserved raw element (nested tables, structured document tags).
type CellChild interface {
	isCellChild()
}

// TableCell is the w:tc element.
type TableCell struct {
	Properties *RawElement
	Children   []CellChild
}

// Paragraphs returns the cell's paragraphs in document order.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, child := range c.Children {
		if p, ok := child.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// GetText concatenates the text of the cell's paragraphs, one per line.
func (c *TableCell) GetText() string {
	var parts []string
	for _, p := range c.Paragraphs() {
		if text := p.GetText(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func (c *TableCell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tcPr":
				raw, err := captureRaw(d, el)
				if err != nil {
					return err
				}
				c.Properties = &raw
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &el); err != nil {
					return err
				}
				c.Children = append(c.Children, &para)
			default:
				raw, err := captureRaw(d, el)
				if err != nil {
					return err
				}
				c.Children = append(c.Children, &raw)
			}
		case xml.EndElement:
			if el.Name.Local == "tc" {
				return nil
			}
		}
	}
	return nil
}

func (c *TableCell) writeXML(b *bytes.Buffer) {
	b.WriteString("<w:tc>")
	if c.Properties != nil {
		c.Properties.writeXML(b)
	}
	for _, child := range c.Children {
		switch el := child.(type) {
		case *Paragraph:
			el.writeXML(b)
		case *RawElement:
			el.writeXML(b)
		}
	}
	b.WriteString("</w:tc>")
}
