// Load a cleaned wikisource corpus into ElasticSearch
package main

import (
	"compress/bzip2"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikiplain"
)

var wg = sync.WaitGroup{}

const lang = "en"

func articleHandler(u string, ch chan *wikiplain.Article) {
	counter := 0
	es := elasticsearch.ElasticSearch{URL: u}
	bulkLoader := es.Bulk()

	for a := range ch {
		counter++
		if counter > 1000 {
			bulkLoader.SendBatch()
			counter = 0
		}
		ui := elasticsearch.UpdateInstruction{
			Id:    a.ID,
			Index: "wikisource",
			Type:  "article",
			Body: map[string]interface{}{
				"title": a.Title,
				"url":   a.URL,
				"text":  a.Text,
			},
		}
		bulkLoader.Update(&ui)
		wg.Done()
	}
	bulkLoader.Quit()
}

func main() {
	filename, esurl := os.Args[1], os.Args[2]

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	z := bzip2.NewReader(f)

	p, err := wikiplain.NewParser(z)
	if err != nil {
		log.Fatalf("Error setting up new page parser:  %v", err)
	}

	log.Printf("Got site info:  %+v", p.SiteInfo)

	cleaner := wikiplain.NewCleaner(lang, 16)

	ch := make(chan *wikiplain.Article, 1000)

	for i := 0; i < 4; i++ {
		go articleHandler(esurl, ch)
	}

	articles := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for err == nil {
		var raw *wikiplain.RawArticle
		raw, err = p.Next()
		if err != nil {
			break
		}
		a, cerr := cleaner.Clean(raw)
		if cerr != nil {
			log.Printf("Dropping %q: %v", raw.Title, cerr)
			continue
		}
		if a == nil {
			continue
		}
		wg.Add(1)
		ch <- a

		articles++
		if articles%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s articles total (%.2f/s)",
				humanize.Comma(articles), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}
	wg.Wait()
	close(ch)
	if err != io.EOF {
		log.Printf("Stopped with error: %v", err)
	}
	log.Printf("Ended after %v: %s articles",
		time.Since(start), humanize.Comma(articles))
}
