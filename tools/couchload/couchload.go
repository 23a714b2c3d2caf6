// Load a cleaned wikisource corpus into CouchDB
package main

import (
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-couch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikiplain"
)

const (
	lang   = "en"
	minLen = 16
)

var wg sync.WaitGroup

type article struct {
	ID         string   `json:"_id"`
	Rev        string   `json:"_rev,omitempty"`
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Categories []string `json:"categories,omitempty"`
}

func escapeTitle(in string) string {
	return strings.Replace(strings.Replace(in, "/", "%2f", -1),
		"+", "%2b", -1)
}

func resolveConflict(db *couch.Database, a *article) {
	log.Printf("Resolving conflict on %s", a.ID)
	var prev article
	err := db.Retrieve(escapeTitle(a.ID), &prev)
	if err != nil {
		log.Printf("  Error retrieving existing %v: %v", a.ID, err)
		return
	}
	if prev.Rev == "" {
		log.Printf("Got no rev from %v", a.ID)
		return
	}
	_, err = db.EditWith(a, a.ID, prev.Rev)
	if err != nil {
		log.Printf("  Error updating %v: %v", a.ID, err)
	}
}

func doArticle(db *couch.Database, a *wikiplain.Article, cats []string) {
	doc := article{
		ID:         escapeTitle(a.Title),
		URL:        a.URL,
		Title:      a.Title,
		Text:       a.Text,
		Categories: cats,
	}

	_, _, err := db.Insert(&doc)
	httpe, isHTTPError := err.(*couch.HTTPError)
	switch {
	case err == nil:
		// yay
	case isHTTPError && httpe.Status == 409:
		resolveConflict(db, &doc)
	default:
		log.Printf("Error inserting %#v: %v", doc, err)
	}
}

func loadStream(db *couch.Database, cleaner *wikiplain.Cleaner,
	dumpfn string, r wikiplain.StreamRange, counted chan<- bool) {
	e, err := wikiplain.NewStreamExtractor(dumpfn, r)
	if err != nil {
		log.Printf("Skipping stream at %v: %v", r.Start, err)
		return
	}
	defer e.Close()

	for {
		raw, err := e.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Printf("Skipping stream at %v: %v", r.Start, err)
			return
		}
		a, err := cleaner.Clean(raw)
		if err != nil {
			log.Printf("Dropping %q: %v", raw.Title, err)
			continue
		}
		if a == nil {
			continue
		}
		doArticle(db, a, wikiplain.FindCategories(raw.Markup, lang))
		counted <- true
	}
}

func streamHandler(db *couch.Database, dumpfn string,
	ch <-chan wikiplain.StreamRange, counted chan<- bool) {
	defer wg.Done()
	cleaner := wikiplain.NewCleaner(lang, minLen)
	for r := range ch {
		loadStream(db, cleaner, dumpfn, r, counted)
	}
}

func main() {
	dburl, idx, file := os.Args[1], os.Args[2], os.Args[3]

	db, err := couch.Connect(dburl)
	if err != nil {
		log.Fatalf("Error connecting to couchdb: %v", err)
	}

	ranges, err := wikiplain.BuildIndex(idx)
	if err != nil {
		log.Fatalf("Error reading index: %v", err)
	}
	log.Printf("Found %s streams", humanize.Comma(int64(len(ranges))))

	ch := make(chan wikiplain.StreamRange, len(ranges))
	counted := make(chan bool, 1000)

	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go streamHandler(&db, file, ch, counted)
	}
	for _, r := range ranges {
		ch <- r
	}
	close(ch)

	go func() {
		wg.Wait()
		close(counted)
	}()

	articles := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for range counted {
		articles++
		if articles%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s articles total (%.2f/s)",
				humanize.Comma(articles), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}
	log.Printf("Loaded %s articles in %v",
		humanize.Comma(articles), time.Since(start))
}
