package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
)

func readZipFile(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return data
	}
	t.Fatalf("%s not found in package", name)
	return nil
}

// slideParagraphs collects the text of each <a:p> in a slide.
func slideParagraphs(t *testing.T, data []byte) []string {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))

	var paras []string
	var cur strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("slide xml: %v", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "p" && el.Name.Space == "http://schemas.openxmlformats.org/drawingml/2006/main" {
				cur.Reset()
			}
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inText = false
			}
			if el.Name.Local == "p" && el.Name.Space == "http://schemas.openxmlformats.org/drawingml/2006/main" {
				paras = append(paras, cur.String())
			}
		case xml.CharData:
			if inText {
				cur.Write(el)
			}
		}
	}
	return paras
}

func renderDeck(t *testing.T, chunks []string, opts Options) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := NewPPTXWriter().Write(context.Background(), &buf, chunks, opts); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	return zr
}

func TestPPTXWriterSlides(t *testing.T) {
	chunks := []string{"Verse One\nHello there", "Tom & Jerry <3", "last\n"}
	opts := Options{Style: DefaultStyle(), GroupSize: 2, Title: "My Song"}

	zr := renderDeck(t, chunks, opts)

	// Every part must be well-formed XML.
	for _, f := range zr.File {
		data := readZipFile(t, zr, f.Name)
		dec := xml.NewDecoder(bytes.NewReader(data))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%s is not well-formed: %v", f.Name, err)
			}
		}
	}

	want := [][]string{
		{"Verse One", "Hello there"},
		{"Tom & Jerry <3"},
		{"last", ""},
	}
	for i, w := range want {
		got := slideParagraphs(t, readZipFile(t, zr, fmt.Sprintf("ppt/slides/slide%d.xml", i+1)))
		if strings.Join(got, "|") != strings.Join(w, "|") {
			t.Errorf("slide %d paragraphs = %q, want %q", i+1, got, w)
		}
	}

	for _, f := range zr.File {
		if f.Name == "ppt/slides/slide4.xml" {
			t.Error("unexpected fourth slide")
		}
	}

	pres := string(readZipFile(t, zr, "ppt/presentation.xml"))
	if strings.Count(pres, "<p:sldId ") != 3 {
		t.Errorf("presentation lists %d slides, want 3", strings.Count(pres, "<p:sldId "))
	}

	core := string(readZipFile(t, zr, "docProps/core.xml"))
	if !strings.Contains(core, "<dc:title>My Song</dc:title>") {
		t.Errorf("core.xml missing title: %s", core)
	}
}

func TestPPTXWriterStyle(t *testing.T) {
	style := DefaultStyle()
	style.FontSize = 44

	zr := renderDeck(t, []string{"a\nb\nc\nd"}, Options{Style: style, GroupSize: 4})
	slide := string(readZipFile(t, zr, "ppt/slides/slide1.xml"))

	checks := []string{
		`sz="4400"`,
		`b="1"`,
		`<a:latin typeface="Helvetica"/>`,
		`<a:srgbClr val="FFFFFF"/>`,
		`<a:srgbClr val="000000"/>`,
		`algn="ctr"`,
		`<a:off x="0" y="1828800"/>`,
		`<a:ext cx="9144000" cy="1470025"/>`,
	}
	for _, c := range checks {
		if !strings.Contains(slide, c) {
			t.Errorf("slide missing %s", c)
		}
	}
}

func TestPPTXWriterNoChunks(t *testing.T) {
	zr := renderDeck(t, nil, Options{Style: DefaultStyle(), GroupSize: 1})
	pres := string(readZipFile(t, zr, "ppt/presentation.xml"))
	if strings.Contains(pres, "sldIdLst") {
		t.Error("empty deck should not list slides")
	}
}

func TestPPTXWriterInvalidStyle(t *testing.T) {
	style := DefaultStyle()
	style.FontSize = 0

	var buf bytes.Buffer
	err := NewPPTXWriter().Write(context.Background(), &buf, []string{"x"}, Options{Style: style, GroupSize: 1})
	if err == nil {
		t.Error("Write() should reject a zero font size")
	}
}

func TestPPTXWriterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewPPTXWriter().Write(ctx, &buf, []string{"x", "y"}, Options{Style: DefaultStyle(), GroupSize: 1})
	if err != context.Canceled {
		t.Errorf("Write() error = %v, want context.Canceled", err)
	}
}

func TestTopOffset(t *testing.T) {
	tests := []struct {
		groupSize int
		want      int64
	}{
		{1, 2743200},
		{2, 2743200},
		{3, 2286000},
		{4, 1828800},
	}
	for _, tt := range tests {
		if got := TopOffset(tt.groupSize); got != tt.want {
			t.Errorf("TopOffset(%d) = %d, want %d", tt.groupSize, got, tt.want)
		}
	}
}

func TestStyleValidate(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Errorf("DefaultStyle().Validate() error = %v", err)
	}

	bad := []Style{
		{FontSize: 50, TextColor: "FFFFFF", BackgroundColor: "000000"},
		{FontName: "Arial", FontSize: -1, TextColor: "FFFFFF", BackgroundColor: "000000"},
		{FontName: "Arial", FontSize: 50, TextColor: "#FFF", BackgroundColor: "000000"},
		{FontName: "Arial", FontSize: 50, TextColor: "FFFFFF", BackgroundColor: "black"},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: Validate() should fail for %+v", i, s)
		}
	}
}
