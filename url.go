package wikiplain

import "net/url"

// URLForArticle gets the canonical wikisource URL for a title on the
// wiki named by the two-letter language code. The title is
// percent-encoded in the path, so decoding the path recovers it.
//
// See https://meta.wikimedia.org/wiki/Help:URL
func URLForArticle(title, lang string) string {
	u := url.URL{
		Scheme: "https",
		Host:   lang + ".wikisource.org",
		Path:   "/wiki/" + title,
	}
	return u.String()
}
