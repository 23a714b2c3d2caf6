package wikiplain

import (
	"io"
	"strings"
	"testing"
)

const testDump = `<mediawiki>
  <siteinfo>
    <sitename>Wikisource</sitename>
    <base>https://en.wikisource.org/wiki/Main_Page</base>
    <generator>MediaWiki 1.43</generator>
    <case>first-letter</case>
  </siteinfo>
  <page>
    <title>Walden</title>
    <ns>0</ns>
    <id>21</id>
    <revision>
      <id>201</id>
      <text>I went to the woods.</text>
    </revision>
  </page>
  <page>
    <title>Author:Henry David Thoreau</title>
    <ns>102</ns>
    <id>22</id>
    <revision>
      <id>202</id>
      <text>Author page, not an article.</text>
    </revision>
  </page>
  <page>
    <title>Life in the Woods</title>
    <ns>0</ns>
    <id>23</id>
    <redirect title="Walden" />
    <revision>
      <id>203</id>
      <text>#REDIRECT [[Walden]]</text>
    </revision>
  </page>
  <page>
    <title>Deleted Page</title>
    <ns>0</ns>
    <id>24</id>
    <revision>
      <id>204</id>
      <text></text>
    </revision>
  </page>
  <page>
    <title>Civil Disobedience</title>
    <ns>0</ns>
    <id>25</id>
    <revision>
      <id>205</id>
      <text>That government is best.</text>
    </revision>
  </page>
</mediawiki>`

func TestParser(t *testing.T) {
	p, err := NewParser(strings.NewReader(testDump))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}
	if p.SiteInfo.SiteName != "Wikisource" {
		t.Errorf("Unexpected site info: %+v", p.SiteInfo)
	}

	expected := []RawArticle{
		{ID: "21", Title: "Walden", Markup: "I went to the woods."},
		{ID: "25", Title: "Civil Disobedience", Markup: "That government is best."},
	}
	for _, e := range expected {
		a, err := p.Next()
		if err != nil {
			t.Fatalf("Error getting %v: %v", e.Title, err)
		}
		if *a != e {
			t.Errorf("Expected %+v, got %+v", e, *a)
		}
	}
	if _, err := p.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF at end of dump, got %v", err)
	}
}

func TestParserAllFiltered(t *testing.T) {
	// A dump holding only redirects and non-main pages yields
	// nothing.
	dump := `<mediawiki>
  <siteinfo><sitename>test</sitename></siteinfo>
  <page>
    <title>R</title><ns>0</ns><id>1</id>
    <redirect title="S" />
    <revision><id>2</id><text>#REDIRECT [[S]]</text></revision>
  </page>
  <page>
    <title>Category:C</title><ns>14</ns><id>3</id>
    <revision><id>4</id><text>cat</text></revision>
  </page>
</mediawiki>`
	p, err := NewParser(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}
	if a, err := p.Next(); err != io.EOF {
		t.Fatalf("Expected io.EOF, got %+v, %v", a, err)
	}
}

func TestParserMalformed(t *testing.T) {
	p, err := NewParser(strings.NewReader(
		"<mediawiki><siteinfo></siteinfo><page><title>x</page>"))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}
	if _, err := p.Next(); err == nil || err == io.EOF {
		t.Fatalf("Expected XML error, got %v", err)
	}
}
