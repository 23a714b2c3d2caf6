// Load a cleaned wikisource corpus into CouchBase
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/couchbase/go-couchbase"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikiplain"
)

var numWorkers = flag.Int("numWorkers", 8, "Number of article workers")
var lang = flag.String("lang", "en", "Two-letter wiki language code")
var minLen = flag.Int("minlen", 16, "Minimum cleaned text length")

var wg sync.WaitGroup

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

func doArticle(db *couchbase.Bucket, a *wikiplain.Article) {
	if err := db.Set(a.Title, 0, a); err != nil {
		log.Printf("Error setting %v: %v", a.Title, err)
	}
}

func articleHandler(db *couchbase.Bucket, ch <-chan *wikiplain.Article) {
	defer wg.Done()
	for a := range ch {
		doArticle(db, a)
	}
}

func main() {
	couchbaseServer := flag.String("couchbase", "http://localhost:8091/",
		"Couchbase URL")
	couchbaseBucket := flag.String("bucket", "default", "Couchbase bucket")
	procs := flag.Int("cpus", runtime.NumCPU(), "Number of CPUS to use")
	flag.Parse()
	if flag.NArg() < 2 {
		usage()
	}

	runtime.GOMAXPROCS(*procs)

	db, err := couchbase.GetBucket(*couchbaseServer,
		"default", *couchbaseBucket)
	if err != nil {
		log.Fatalf("Error connecting to couchbase: %v", err)
	}

	p, err := wikiplain.NewCorpusParser(flag.Arg(0), flag.Arg(1),
		*lang, *minLen, runtime.GOMAXPROCS(0))
	if err != nil {
		log.Fatalf("Error initializing corpus parser: %v", err)
	}

	ch := make(chan *wikiplain.Article, 1000)

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go articleHandler(db, ch)
	}

	articles := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for err == nil {
		var a *wikiplain.Article
		a, err = p.Next()
		if err == nil {
			ch <- a
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
	close(ch)
	wg.Wait()
	if err != io.EOF {
		log.Fatalf("Error reading corpus: %v", err)
	}
	log.Printf("Loaded %s articles in %v",
		humanize.Comma(articles), time.Since(start))
}
