package wikiplain

import (
	"encoding/xml"
	"strings"
)

// A RawArticle is one main-namespace, non-redirect page as it appears
// in the dump: wikitext markup, not yet cleaned. Markup is never
// empty.
type RawArticle struct {
	ID     string
	Title  string
	Markup string
}

const mainNamespace = "0"

// nextArticle advances d to the next <page> element surviving the
// namespace, redirect and empty-text filters. Returns the decoder's
// io.EOF when the document is exhausted.
func nextArticle(d *xml.Decoder) (*RawArticle, error) {
	for {
		t, err := d.Token()
		if err != nil {
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}
		a, err := parsePage(d)
		if err != nil {
			return nil, err
		}
		if a != nil {
			return a, nil
		}
	}
}

// parsePage consumes one <page> element whose start tag has just been
// read. It returns nil for pages outside the main namespace,
// redirects, and pages without revision text.
func parsePage(d *xml.Decoder) (*RawArticle, error) {
	var a RawArticle
	for {
		t, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch tok := t.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "title":
				if a.Title, err = elementText(d); err != nil {
					return nil, err
				}
			case "ns":
				ns, err := elementText(d)
				if err != nil {
					return nil, err
				}
				if ns != mainNamespace {
					if err := d.Skip(); err != nil {
						return nil, err
					}
					return nil, nil
				}
			case "redirect":
				// Consume the redirect element, then the rest
				// of the page.
				if err := d.Skip(); err != nil {
					return nil, err
				}
				if err := d.Skip(); err != nil {
					return nil, err
				}
				return nil, nil
			case "id":
				if a.ID != "" {
					if err := d.Skip(); err != nil {
						return nil, err
					}
					break
				}
				if a.ID, err = elementText(d); err != nil {
					return nil, err
				}
			case "revision":
				if a.Markup != "" {
					if err := d.Skip(); err != nil {
						return nil, err
					}
					break
				}
				if a.Markup, err = revisionText(d); err != nil {
					return nil, err
				}
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if tok.Name.Local == "page" {
				if a.Markup == "" {
					// Deleted or special page.
					return nil, nil
				}
				return &a, nil
			}
		}
	}
}

// revisionText extracts the <text> child of a <revision> element and
// consumes the whole element.
func revisionText(d *xml.Decoder) (string, error) {
	var text string
	for {
		t, err := d.Token()
		if err != nil {
			return "", err
		}
		switch tok := t.(type) {
		case xml.StartElement:
			if tok.Name.Local == "text" {
				if text, err = elementText(d); err != nil {
					return "", err
				}
				break
			}
			if err := d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			// Only </revision> can surface at this level.
			return text, nil
		}
	}
}

// elementText accumulates the character data of the element whose
// start tag has just been consumed, through its end tag.
func elementText(d *xml.Decoder) (string, error) {
	var b strings.Builder
	for {
		t, err := d.Token()
		if err != nil {
			return "", err
		}
		switch tok := t.(type) {
		case xml.CharData:
			b.Write(tok)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return b.String(), nil
		}
	}
}
