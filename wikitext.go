package wikiplain

import (
	"html"
	"strings"
)

// A WikitextError means an article's markup was too pathological to
// parse. The article should be dropped, not the stream it came from.
type WikitextError struct {
	Msg string
}

func (e *WikitextError) Error() string {
	return "wikiplain: wikitext: " + e.Msg
}

// maxWikiDepth bounds construct nesting so hostile markup cannot blow
// the stack.
const maxWikiDepth = 64

type nodeKind int

const (
	textNode     nodeKind = iota
	linkNode              // [[target]] or [[target|label]]
	extLinkNode           // [http://example.com label]
	templateNode          // {{...}}
	tagNode               // <name>body</name>, and {|...|} as a "table" tag
	headingNode           // == title ==
)

// A node is one element of parsed wikitext. Which fields carry
// meaning depends on kind: text is the literal for textNode, the raw
// source for templateNode and tables, and the title for headingNode;
// kids hold a link's label or a tag's body.
type node struct {
	kind   nodeKind
	text   string
	target string // linkNode, extLinkNode
	name   string // tagNode, lower case
	kids   []*node
	level  int // headingNode
}

// parseWikitext parses markup into a flat node list. The parser is
// deliberately tolerant: unclosed constructs fall back to literal
// text, and only pathological nesting is reported as an error.
func parseWikitext(src string) ([]*node, error) {
	s := &wikiScanner{src: src}
	nodes, _, err := s.parseNodes("", "")
	return nodes, err
}

type wikiScanner struct {
	src   string
	pos   int
	depth int
}

// parseNodes parses until the terminator term, the closing tag
// closeTag, or the end of input. found reports whether a terminator
// was consumed.
func (s *wikiScanner) parseNodes(term, closeTag string) (nodes []*node, found bool, err error) {
	s.depth++
	if s.depth > maxWikiDepth {
		return nil, false, &WikitextError{Msg: "construct nesting too deep"}
	}
	defer func() { s.depth-- }()

	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, &node{kind: textNode, text: text.String()})
			text.Reset()
		}
	}

	for s.pos < len(s.src) {
		rest := s.src[s.pos:]

		if term != "" && strings.HasPrefix(rest, term) {
			s.pos += len(term)
			flush()
			return nodes, true, nil
		}
		if closeTag != "" && isClosingTag(rest, closeTag) {
			if gt := strings.IndexByte(rest, '>'); gt != -1 {
				s.pos += gt + 1
			} else {
				s.pos = len(s.src)
			}
			flush()
			return nodes, true, nil
		}
		if strings.HasPrefix(rest, "<!--") {
			s.skipComment()
			continue
		}

		c := rest[0]
		atLineStart := s.pos == 0 || s.src[s.pos-1] == '\n'

		var n *node
		var matched bool
		switch {
		case strings.HasPrefix(rest, "[["):
			n, matched, err = s.parseLink()
			if err != nil {
				return nil, false, err
			}
		case strings.HasPrefix(rest, "{{"):
			n, matched = s.parseTemplate()
		case strings.HasPrefix(rest, "{|"):
			n, matched = s.parseTable()
		case c == '[':
			n, matched = s.parseExtLink()
		case c == '<':
			n, matched, err = s.parseTag()
			if err != nil {
				return nil, false, err
			}
		case c == '=' && atLineStart:
			n, matched = s.parseHeading()
		}

		if matched {
			flush()
			if n != nil {
				nodes = append(nodes, n)
			}
			continue
		}
		text.WriteByte(c)
		s.pos++
	}
	flush()
	return nodes, false, nil
}

func (s *wikiScanner) skipComment() {
	if end := strings.Index(s.src[s.pos:], "-->"); end != -1 {
		s.pos += end + 3
	} else {
		s.pos = len(s.src)
	}
}

// parseLink parses an internal [[target|label]] link. The label may
// itself contain links (image captions routinely do).
func (s *wikiScanner) parseLink() (*node, bool, error) {
	inner := s.src[s.pos+2:]
	pipe := strings.Index(inner, "|")
	close_ := strings.Index(inner, "]]")
	if close_ == -1 {
		return nil, false, nil
	}
	n := &node{kind: linkNode}
	if pipe != -1 && pipe < close_ {
		target := inner[:pipe]
		if strings.ContainsAny(target, "\n[") {
			return nil, false, nil
		}
		n.target = target
		s.pos += 2 + pipe + 1
		kids, _, err := s.parseNodes("]]", "")
		if err != nil {
			return nil, false, err
		}
		n.kids = kids
	} else {
		target := inner[:close_]
		if strings.ContainsAny(target, "\n[") {
			return nil, false, nil
		}
		n.target = target
		s.pos += 2 + close_ + 2
	}
	return n, true, nil
}

var extLinkSchemes = []string{"http://", "https://", "ftp://", "//"}

func (s *wikiScanner) parseExtLink() (*node, bool) {
	body := s.src[s.pos+1:]
	scheme := false
	for _, sch := range extLinkSchemes {
		if len(body) >= len(sch) && strings.EqualFold(body[:len(sch)], sch) {
			scheme = true
			break
		}
	}
	if !scheme {
		return nil, false
	}
	end := strings.IndexByte(body, ']')
	if end == -1 || strings.ContainsRune(body[:end], '\n') {
		return nil, false
	}
	n := &node{kind: extLinkNode}
	link := body[:end]
	if sp := strings.IndexAny(link, " \t"); sp != -1 {
		n.target = link[:sp]
		n.kids = []*node{{kind: textNode, text: link[sp+1:]}}
	} else {
		n.target = link
	}
	s.pos += end + 2
	return n, true
}

// parseTemplate consumes a balanced {{...}} call, nested calls
// included. Template contents are never rendered, so the body is kept
// as raw source.
func (s *wikiScanner) parseTemplate() (*node, bool) {
	depth := 0
	i := s.pos
	for i < len(s.src)-1 {
		switch {
		case s.src[i] == '{' && s.src[i+1] == '{':
			depth++
			i += 2
		case s.src[i] == '}' && s.src[i+1] == '}':
			depth--
			i += 2
			if depth == 0 {
				n := &node{kind: templateNode, text: s.src[s.pos:i]}
				s.pos = i
				return n, true
			}
		default:
			i++
		}
	}
	return nil, false
}

// parseTable consumes a {|...|} wiki table, counting template openers
// too so a {{...}} inside a cell cannot close the table early. Tables
// become "table" tags so one removal path serves both spellings.
func (s *wikiScanner) parseTable() (*node, bool) {
	depth := 0
	i := s.pos
	for i < len(s.src)-1 {
		switch {
		case s.src[i] == '{' && (s.src[i+1] == '|' || s.src[i+1] == '{'):
			depth++
			i += 2
		case (s.src[i] == '|' || s.src[i] == '}') && s.src[i+1] == '}':
			depth--
			i += 2
			if depth == 0 {
				n := &node{kind: tagNode, name: "table", text: s.src[s.pos:i]}
				s.pos = i
				return n, true
			}
		default:
			i++
		}
	}
	return nil, false
}

// Tags with no body and, customarily, no closing slash.
var voidTags = map[string]bool{"br": true, "hr": true}

func (s *wikiScanner) parseTag() (*node, bool, error) {
	rest := s.src[s.pos:]
	gt := strings.IndexByte(rest, '>')
	if gt <= 1 {
		return nil, false, nil
	}
	if rest[1] == '/' {
		// Stray closer with no matching opener; drop it.
		s.pos += gt + 1
		return nil, true, nil
	}
	inside := rest[1:gt]
	selfClose := strings.HasSuffix(inside, "/")
	if selfClose {
		inside = strings.TrimSuffix(inside, "/")
	}
	name := inside
	if i := strings.IndexAny(inside, " \t\n"); i != -1 {
		name = inside[:i]
	}
	name = strings.ToLower(name)
	if !validTagName(name) {
		return nil, false, nil
	}
	n := &node{kind: tagNode, name: name}
	s.pos += gt + 1
	if selfClose || voidTags[name] {
		return n, true, nil
	}
	if name == "nowiki" {
		body := s.src[s.pos:]
		if end := strings.Index(body, "</nowiki>"); end != -1 {
			n.kids = []*node{{kind: textNode, text: body[:end]}}
			s.pos += end + len("</nowiki>")
		} else {
			n.kids = []*node{{kind: textNode, text: body}}
			s.pos = len(s.src)
		}
		return n, true, nil
	}
	kids, _, err := s.parseNodes("", name)
	if err != nil {
		return nil, false, err
	}
	n.kids = kids
	return n, true, nil
}

// parseHeading parses a == title == line. The trailing newline stays
// in the following text node.
func (s *wikiScanner) parseHeading() (*node, bool) {
	i := s.pos
	level := 0
	for i < len(s.src) && s.src[i] == '=' && level < 6 {
		level++
		i++
	}
	end := len(s.src)
	if eol := strings.IndexByte(s.src[i:], '\n'); eol != -1 {
		end = i + eol
	}
	line := strings.TrimRight(s.src[i:end], " \t")
	marker := strings.Repeat("=", level)
	if !strings.HasSuffix(line, marker) {
		return nil, false
	}
	title := strings.TrimSpace(strings.TrimSuffix(line, marker))
	if title == "" {
		return nil, false
	}
	s.pos = end
	return &node{kind: headingNode, level: level, text: title}, true
}

func isClosingTag(s, name string) bool {
	if !strings.HasPrefix(s, "</") {
		return false
	}
	rest := s[2:]
	if len(rest) < len(name) || !strings.EqualFold(rest[:len(name)], name) {
		return false
	}
	rest = strings.TrimLeft(rest[len(name):], " \t")
	return strings.HasPrefix(rest, ">")
}

func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// collectNodes returns every node of the given kind, depth first, the
// enclosing node before its children.
func collectNodes(nodes []*node, kind nodeKind) []*node {
	var out []*node
	for _, n := range nodes {
		if n.kind == kind {
			out = append(out, n)
		}
		out = append(out, collectNodes(n.kids, kind)...)
	}
	return out
}

// removeNode deletes target from nodes, searching recursively through
// link labels and tag bodies. The return reports whether the node was
// found; a miss is benign, since the node may already have vanished
// with an enclosing construct.
func removeNode(nodes *[]*node, target *node) bool {
	for i, n := range *nodes {
		if n == target {
			*nodes = append((*nodes)[:i], (*nodes)[i+1:]...)
			return true
		}
		if removeNode(&n.kids, target) {
			return true
		}
	}
	return false
}

// replaceNode swaps target for repl in place, with the same miss
// semantics as removeNode.
func replaceNode(nodes *[]*node, target, repl *node) bool {
	for i, n := range *nodes {
		if n == target {
			(*nodes)[i] = repl
			return true
		}
		if replaceNode(&n.kids, target, repl) {
			return true
		}
	}
	return false
}

// renderNodes serializes nodes to plain text: labels for links,
// contents for ordinary tags, titles for headings. Templates and
// bodiless tags disappear.
func renderNodes(nodes []*node) string {
	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *node) {
	switch n.kind {
	case textNode:
		b.WriteString(renderText(n.text))
	case linkNode:
		if len(n.kids) > 0 {
			for _, k := range n.kids {
				renderNode(b, k)
			}
		} else {
			b.WriteString(renderText(n.target))
		}
	case extLinkNode:
		// A bare [http://...] renders to nothing.
		for _, k := range n.kids {
			renderNode(b, k)
		}
	case tagNode:
		if n.name == "nowiki" {
			for _, k := range n.kids {
				b.WriteString(k.text)
			}
			return
		}
		for _, k := range n.kids {
			renderNode(b, k)
		}
	case headingNode:
		b.WriteString(renderText(n.text))
	}
}

// renderText strips the inline markup that survives tokenization:
// bold and italic quote runs, and HTML entities.
func renderText(s string) string {
	s = strings.ReplaceAll(s, "'''", "")
	s = strings.ReplaceAll(s, "''", "")
	return html.UnescapeString(s)
}
