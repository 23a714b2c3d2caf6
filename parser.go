package wikiplain

import (
	"encoding/xml"
	"io"
)

// The toplevel site info describing basic dump properties.
type SiteInfo struct {
	SiteName   string `xml:"sitename"`
	Base       string `xml:"base"`
	Generator  string `xml:"generator"`
	Case       string `xml:"case"`
	Namespaces []struct {
		Key   string `xml:"key,attr"`
		Case  string `xml:"case,attr"`
		Value string `xml:",chardata"`
	} `xml:"namespaces>namespace"`
}

// A Parser reads a complete, rooted dump sequentially, without a
// side-car index.
type Parser struct {
	// The toplevel site info.
	SiteInfo SiteInfo
	d        *xml.Decoder
}

// NewParser gets a sequential dump parser reading from the given
// reader. The caller is responsible for decompression.
func NewParser(r io.Reader) (*Parser, error) {
	d := xml.NewDecoder(r)
	_, err := d.Token()
	if err != nil {
		return nil, err
	}

	si := SiteInfo{}
	err = d.Decode(&si)
	if err != nil {
		return nil, err
	}

	return &Parser{SiteInfo: si, d: d}, nil
}

// Next returns the next main-namespace, non-redirect article from the
// dump, or io.EOF at the end.
func (p *Parser) Next() (*RawArticle, error) {
	return nextArticle(p.d)
}
