package wikiplain

import (
	"regexp"
	"strings"
	"sync"
)

var (
	nowikiRE  = regexp.MustCompile(`(?ms)<nowiki>.*?</nowiki>`)
	commentRE = regexp.MustCompile(`(?ms)<!--.*?-->`)
)

var catLinkREs = struct {
	sync.Mutex
	m map[string]*regexp.Regexp
}{m: map[string]*regexp.Regexp{}}

func catLinkRE(lang string) *regexp.Regexp {
	catLinkREs.Lock()
	defer catLinkREs.Unlock()
	re, ok := catLinkREs.m[lang]
	if !ok {
		names := append(append([]string{}, baseCatPrefixes...), catAliases[lang]...)
		for i, n := range names {
			names[i] = regexp.QuoteMeta(n)
		}
		re = regexp.MustCompile(
			`(?i)\[\[ *(?:` + strings.Join(names, "|") + `) *: *([^|\]]+)`)
		catLinkREs.m[lang] = re
	}
	return re
}

// FindCategories finds the categories an article's raw markup files
// it under, using the category namespace aliases for lang. Names come
// back in document order, deduplicated, without sort keys.
//
// Category links inside comments or <nowiki> blocks are not live, so
// both get stripped first.
func FindCategories(text, lang string) []string {
	cleaned := nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(text, ""), "")

	rv := []string{}
	seen := map[string]bool{}
	for _, m := range catLinkRE(lang).FindAllStringSubmatch(cleaned, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		rv = append(rv, name)
	}
	return rv
}
