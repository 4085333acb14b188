package docx

import (
	"strings"
	"testing"
)

const sampleDocXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<w:body>
<w:p>
<w:pPr><w:pStyle w:val="Heading1"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="3"/></w:numPr><w:spacing w:before="120" w:after="0"/></w:pPr>
<w:r><w:rPr><w:b/><w:sz w:val="24"/></w:rPr><w:t>Hello </w:t></w:r>
<w:r><w:t>World</w:t></w:r>
</w:p>
<w:tbl>
<w:tblPr><w:tblW w:w="5000" w:type="pct"/></w:tblPr>
<w:tblGrid><w:gridCol w:w="2500"/><w:gridCol w:w="2500"/></w:tblGrid>
<w:tr><w:tc><w:tcPr><w:tcW w:w="2500" w:type="dxa"/></w:tcPr><w:p><w:r><w:t>left</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>right</w:t></w:r></w:p></w:tc></w:tr>
<w:tr><w:tc><w:p><w:r><w:t>second</w:t></w:r></w:p></w:tc><w:tc><w:p/></w:tc></w:tr>
</w:tbl>
<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>
</w:body>
</w:document>`

func TestParseDocumentStructure(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDocXML))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	paras := doc.Body.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("got %d body paragraphs, want 1", len(paras))
	}
	if got := paras[0].GetText(); got != "Hello World" {
		t.Errorf("paragraph text = %q, want %q", got, "Hello World")
	}

	tables := doc.Body.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if len(tables[0].Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(tables[0].Rows))
	}
	if got := tables[0].Rows[0].GetText(); got != "left right" {
		t.Errorf("row text = %q, want %q", got, "left right")
	}

	if doc.Body.SectPr == nil {
		t.Error("section properties were not captured")
	}
}

func TestRunFormattingDecoded(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDocXML))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	runs := doc.Body.Paragraphs()[0].Runs()
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if !runs[0].Properties.IsBold() {
		t.Error("first run should be bold")
	}
	if runs[0].Properties.Size == nil || runs[0].Properties.Size.Val != "24" {
		t.Errorf("first run size = %v, want 24", runs[0].Properties.Size)
	}
	if runs[1].Properties.IsBold() {
		t.Error("second run should not be bold")
	}
}

func TestRoundTripPreservesOpaqueContent(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDocXML))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	out := string(doc.XML())

	for _, want := range []string{
		`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="3"/></w:numPr>`,
		`<w:spacing w:before="120" w:after="0"/>`,
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`,
		`<w:tblGrid><w:gridCol w:w="2500"/><w:gridCol w:w="2500"/></w:tblGrid>`,
		`xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`,
		`<w:t xml:space="preserve">Hello </w:t>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized document missing %q", want)
		}
	}

	// The output must parse again and read the same.
	again, err := ParseBytes([]byte(out))
	if err != nil {
		t.Fatalf("reparsing serialized document: %v", err)
	}
	if got := again.Body.Paragraphs()[0].GetText(); got != "Hello World" {
		t.Errorf("round-tripped text = %q, want %q", got, "Hello World")
	}
}

func TestSetRunsReplacesContent(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDocXML))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	p := doc.Body.Paragraphs()[0]
	p.SetRuns([]*Run{NewTextRun("replaced", &RunProperties{Bold: &Toggle{}})})

	if got := p.GetText(); got != "replaced" {
		t.Errorf("text after SetRuns = %q, want %q", got, "replaced")
	}
	if p.Properties == nil || p.Properties.Style == nil || p.Properties.Style.Val != "Heading1" {
		t.Error("paragraph properties should survive SetRuns")
	}
}

func TestRemoveRow(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
		wantLen int
	}{
		{name: "first row", index: 0, wantLen: 1},
		{name: "second row", index: 1, wantLen: 1},
		{name: "negative", index: -1, wantErr: true, wantLen: 2},
		{name: "past end", index: 2, wantErr: true, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseBytes([]byte(sampleDocXML))
			if err != nil {
				t.Fatalf("ParseBytes() error = %v", err)
			}
			table := doc.Body.Tables()[0]

			err = table.RemoveRow(tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveRow(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if len(table.Rows) != tt.wantLen {
				t.Errorf("got %d rows after removal, want %d", len(table.Rows), tt.wantLen)
			}
		})
	}
}

func TestNewTextSpacePreserve(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantSpace string
	}{
		{name: "plain", content: "hello", wantSpace: ""},
		{name: "leading space", content: " hello", wantSpace: "preserve"},
		{name: "trailing space", content: "hello ", wantSpace: "preserve"},
		{name: "empty", content: "", wantSpace: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewText(tt.content).Space; got != tt.wantSpace {
				t.Errorf("NewText(%q).Space = %q, want %q", tt.content, got, tt.wantSpace)
			}
		})
	}
}

func TestDocumentText(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDocXML))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	text := doc.Text()
	for _, want := range []string{"Hello World", "left\tright", "second"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q in %q", want, text)
		}
	}
}
