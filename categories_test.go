package wikiplain

import (
	"reflect"
	"testing"
)

func TestFindCategories(t *testing.T) {
	tests := []struct {
		name, text, lang string
		expected         []string
	}{
		{"none", "no categories here", "en", []string{}},
		{"simple", "x [[Category:Novels]] y", "en", []string{"Novels"}},
		{"several",
			"[[Category:Novels]] [[Category:Whaling]]",
			"en", []string{"Novels", "Whaling"}},
		{"dedup",
			"[[Category:Novels]] text [[Category:Novels]]",
			"en", []string{"Novels"}},
		{"sort key",
			"[[Category:Short stories|Bartleby]]",
			"en", []string{"Short stories"}},
		{"case and spacing",
			"[[ category : Novels ]]",
			"en", []string{"Novels"}},
		{"german alias",
			"[[Kategorie:Romane]] und [[Category:Novels]]",
			"de", []string{"Romane", "Novels"}},
		{"alias not live in english",
			"[[Kategorie:Romane]]",
			"en", []string{}},
		{"commented out",
			"<!-- [[Category:Hidden]] --> [[Category:Live]]",
			"en", []string{"Live"}},
		{"nowiki",
			"<nowiki>[[Category:Hidden]]</nowiki> [[Category:Live]]",
			"en", []string{"Live"}},
	}
	for _, test := range tests {
		got := FindCategories(test.text, test.lang)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("On %v expected %v, got %v",
				test.name, test.expected, got)
		}
	}
}
