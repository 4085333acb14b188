package docx

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// RawElement holds a subtree we do not model, serialized back to prefixed
// OOXML text so it survives a parse/write round trip untouched.
type RawElement struct {
	Name    string
	Content []byte
}

func (r *RawElement) writeXML(b *bytes.Buffer) {
	b.Write(r.Content)
}

// prefixForNamespace maps the namespace URIs seen in Word documents back to
// their conventional prefixes. encoding/xml resolves prefixes to URIs while
// decoding, so raw capture has to undo that.
var prefixForNamespace = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":               "w16cex",
	"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":       "w16sdtdh",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
}

func prefixedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if prefix, ok := prefixForNamespace[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	return n.Local
}

func prefixedAttrName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	if prefix, ok := prefixForNamespace[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	return n.Local
}

func writeTagOpen(b *bytes.Buffer, name string, attrs []xml.Attr) {
	b.WriteByte('<')
	b.WriteString(name)
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(prefixedAttrName(attr.Name))
		b.WriteString(`="`)
		writeEscaped(b, attr.Value)
		b.WriteByte('"')
	}
}

func writeStartTag(b *bytes.Buffer, name string, attrs []xml.Attr) {
	writeTagOpen(b, name, attrs)
	b.WriteByte('>')
}

func writeEscaped(b *bytes.Buffer, s string) {
	// xml.EscapeText also escapes newlines and tabs, which Word does not
	// need inside attribute values or text; a plain replacer is enough.
	escaper.WriteString(b, s)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// captureRaw consumes the element opened by start, including all nested
// content, and returns it serialized with conventional namespace prefixes.
// Elements with no content come out self-closing, the way Word writes them.
func captureRaw(d *xml.Decoder, start xml.StartElement) (RawElement, error) {
	name := prefixedName(start.Name)
	var buf bytes.Buffer

	// The latest start tag is held back so that a directly following end
	// tag collapses the pair into a self-closing element.
	pendingName := name
	pendingAttrs := start.Attr
	pending := true

	flush := func() {
		if pending {
			writeStartTag(&buf, pendingName, pendingAttrs)
			pending = false
		}
	}

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return RawElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			flush()
			depth++
			pendingName = prefixedName(t.Name)
			pendingAttrs = t.Attr
			pending = true
		case xml.EndElement:
			depth--
			if pending {
				writeTagOpen(&buf, pendingName, pendingAttrs)
				buf.WriteString("/>")
				pending = false
				continue
			}
			buf.WriteString("</")
			buf.WriteString(prefixedName(t.Name))
			buf.WriteByte('>')
		case xml.CharData:
			writeEscaped(&buf, string(t))
		}
	}

	return RawElement{Name: name, Content: buf.Bytes()}, nil
}
