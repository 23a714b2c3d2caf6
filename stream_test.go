package wikiplain

import (
	"io"
	"strings"
	"testing"
)

func TestStreamExtraction(t *testing.T) {
	ranges, err := BuildIndex("testdata/index.txt.bz2")
	if err != nil {
		t.Fatalf("Error building index: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("Expected 2 ranges, got %v", ranges)
	}

	// The first stream holds Moby-Dick and a redirect; only the
	// former comes out.
	e, err := NewStreamExtractor("testdata/dump.xml.bz2", ranges[0])
	if err != nil {
		t.Fatalf("Error opening stream: %v", err)
	}
	defer e.Close()

	a, err := e.Next()
	if err != nil {
		t.Fatalf("Error extracting article: %v", err)
	}
	if a.ID != "11" || a.Title != "Moby-Dick" {
		t.Errorf("Unexpected article: %+v", a)
	}
	if !strings.Contains(a.Markup, "Call me [[Ishmael (Moby-Dick)|Ishmael]]") {
		t.Errorf("Markup not carried through: %q", a.Markup)
	}
	if !strings.Contains(a.Markup, "<ref>") {
		t.Errorf("Entities not decoded in markup: %q", a.Markup)
	}
	if _, err := e.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF after redirect was skipped, got %v", err)
	}
}

func TestStreamExtractionFinalRange(t *testing.T) {
	ranges, err := BuildIndex("testdata/index.txt.bz2")
	if err != nil {
		t.Fatalf("Error building index: %v", err)
	}

	// The second stream holds a category page, an empty page, and
	// one real article.
	e, err := NewStreamExtractor("testdata/dump.xml.bz2", ranges[1])
	if err != nil {
		t.Fatalf("Error opening stream: %v", err)
	}
	defer e.Close()

	a, err := e.Next()
	if err != nil {
		t.Fatalf("Error extracting article: %v", err)
	}
	if a.ID != "15" || a.Title != "Bartleby, the Scrivener" {
		t.Errorf("Unexpected article: %+v", a)
	}
	if _, err := e.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF, got %v", err)
	}
}

func TestStreamExtractionMisaligned(t *testing.T) {
	// An offset that is not a stream boundary must fail
	// decompression, not produce garbage.
	e, err := NewStreamExtractor("testdata/dump.xml.bz2",
		StreamRange{Start: 5, End: ToEOF})
	if err != nil {
		t.Fatalf("Error opening stream: %v", err)
	}
	defer e.Close()

	_, err = e.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("Expected decompression failure, got %v", err)
	}
	if _, ok := err.(*DecompressionError); !ok {
		t.Fatalf("Expected *DecompressionError, got %T: %v", err, err)
	}
}

func TestStreamExtractionMissingDump(t *testing.T) {
	_, err := NewStreamExtractor("testdata/nonexistent.bz2",
		StreamRange{Start: 0, End: ToEOF})
	if err == nil {
		t.Fatal("Expected error opening missing dump")
	}
}
