// Fetch a wikisource multistream dump and its index from
// dumps.wikimedia.org.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/httputil"
)

var lang = flag.String("lang", "en", "Two-letter wiki language code")

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  %s [opts]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func fetch(url, dest string) error {
	res, err := http.Get(url)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return httputil.HTTPError(res)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, res.Body)
	if err != nil {
		return err
	}
	log.Printf("Fetched %s (%s)", dest, humanize.Bytes(uint64(n)))
	return nil
}

func main() {
	flag.Parse()

	wiki := *lang + "wikisource"
	names := []string{
		wiki + "-latest-pages-articles-multistream-index.txt.bz2",
		wiki + "-latest-pages-articles-multistream.xml.bz2",
	}
	for _, name := range names {
		url := fmt.Sprintf("https://dumps.wikimedia.org/%s/latest/%s",
			wiki, name)
		log.Printf("Fetching %v", url)
		if err := fetch(url, name); err != nil {
			log.Fatalf("Error fetching %v: %v", url, err)
		}
	}
}
