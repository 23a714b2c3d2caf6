package wikiplain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// An Article is the terminal record of the pipeline: one cleaned,
// plain-text page.
type Article struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

var (
	// Parser directives like __NOTOC__.
	magicWordRE = regexp.MustCompile(`__[A-Z]*__`)
	listMarkRE  = regexp.MustCompile(`(?m)^[*#:;]+ *`)
)

// Base prefixes, valid on every wiki regardless of language.
var (
	baseMediaPrefixes = []string{"File", "Image", "Media"}
	baseCatPrefixes   = []string{"Category"}
)

// A Cleaner converts raw wikitext articles into plain text for one
// language's wiki. A Cleaner is safe for concurrent use.
type Cleaner struct {
	lang       string
	minTextLen int
	mediaRE    *regexp.Regexp
	catRE      *regexp.Regexp
}

// NewCleaner gets a cleaner for the wiki named by the two-letter
// language code. Cleaned articles shorter than minTextLen runes are
// dropped. Languages without alias tables fall back to the English
// base prefixes.
func NewCleaner(lang string, minTextLen int) *Cleaner {
	return &Cleaner{
		lang:       lang,
		minTextLen: minTextLen,
		mediaRE:    prefixPattern(baseMediaPrefixes, mediaAliases[lang]),
		catRE:      prefixPattern(baseCatPrefixes, catAliases[lang]),
	}
}

// prefixPattern compiles a case-insensitive, anchored namespace
// match: one of the names immediately followed by a colon.
func prefixPattern(base, aliases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(base)+len(aliases))
	for _, n := range append(append([]string{}, base...), aliases...) {
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(quoted, "|") + `):`)
}

// Clean converts one raw article to plain text. It returns (nil, nil)
// when the article is dropped for being empty or shorter than the
// configured minimum, and a *WikitextError when the markup cannot be
// parsed. In both cases the article simply produces no output record;
// neither outcome should abort the surrounding stream.
func (c *Cleaner) Clean(raw *RawArticle) (*Article, error) {
	nodes, err := parseWikitext(raw.Markup)
	if err != nil {
		return nil, err
	}

	secs := splitSections(nodes)
	parts := make([]string, 0, len(secs))
	for _, sec := range secs {
		parts = append(parts, c.cleanSection(sec))
	}
	text := strings.Join(parts, "\n\n")
	if text == "" || utf8.RuneCountInString(text) < c.minTextLen {
		return nil, nil
	}

	return &Article{
		ID:    raw.ID,
		URL:   URLForArticle(raw.Title, c.lang),
		Title: raw.Title,
		Text:  text,
	}, nil
}

// A section is the lead of a page or one heading-delimited span,
// heading included.
type section struct {
	nodes []*node
}

// splitSections flattens a page into its lead plus one section per
// heading, in order. Heading hierarchy is not modeled; sub-sections
// become sections of their own.
func splitSections(nodes []*node) []*section {
	secs := []*section{{}}
	cur := secs[0]
	for _, n := range nodes {
		if n.kind == headingNode {
			cur = &section{}
			secs = append(secs, cur)
		}
		cur.nodes = append(cur.nodes, n)
	}
	return secs
}

func (c *Cleaner) cleanSection(sec *section) string {
	// Media embeds vanish entirely; category links stay as bare text
	// with the namespace prefix stripped.
	for _, l := range collectNodes(sec.nodes, linkNode) {
		switch {
		case c.mediaRE.MatchString(l.target):
			removeNode(&sec.nodes, l)
		case c.catRE.MatchString(l.target):
			text := renderNodes([]*node{l})
			text = c.catRE.ReplaceAllString(text, "")
			replaceNode(&sec.nodes, l, &node{kind: textNode, text: text})
		}
	}
	// Footnote markers and tabular layouts are not prose.
	for _, t := range collectNodes(sec.nodes, tagNode) {
		if t.name == "ref" || t.name == "table" {
			removeNode(&sec.nodes, t)
		}
	}

	text := renderNodes(sec.nodes)
	text = listMarkRE.ReplaceAllString(text, "")
	text = magicWordRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
