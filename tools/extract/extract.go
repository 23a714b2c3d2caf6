// Convert a multistream wikimedia dump into a JSON-lines plain-text
// corpus on stdout.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikiplain"
)

var (
	lang    = flag.String("lang", "en", "Two-letter language code of the wiki")
	minLen  = flag.Int("minlen", 16, "Minimum length of cleaned article text")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of stream workers")
)

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage:\n  %s [opts] wikisource.index.bz2 wikisource.xml.bz2\n",
		os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flag.NArg() < 2 {
		usage()
	}

	p, err := wikiplain.NewCorpusParser(flag.Arg(0), flag.Arg(1),
		*lang, *minLen, *workers)
	if err != nil {
		log.Fatalf("Error initializing corpus parser: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	articles := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for {
		a, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading corpus: %v", err)
		}
		if err := enc.Encode(a); err != nil {
			log.Fatalf("Error writing %v: %v", a.Title, err)
		}

		articles++
		if articles%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s articles total (%.2f/s)",
				humanize.Comma(articles), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}
	log.Printf("Finished %s articles in %v",
		humanize.Comma(articles), time.Since(start))
}
