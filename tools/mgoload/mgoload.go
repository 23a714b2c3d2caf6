package main

import (
	"flag"
	"io"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikiplain"
	"gopkg.in/mgo.v2"
)

var proc = flag.Int("proc", 8, "How many stream workers to run.")
var index = flag.String("index", "", "The bz2 multistream index file.")
var file = flag.String("file", "", "The bz2 multistream dump file.")
var cpus = flag.Int("cpus", runtime.NumCPU(), "Number of CPUs to use.")
var dburl = flag.String("dburl", "localhost", "The dburl(s). I.e. localhost.")
var lang = flag.String("lang", "en", "Two-letter wiki language code.")
var minLen = flag.Int("minlen", 16, "Minimum cleaned text length.")
var verbose = flag.Bool("v", false, "Verbose logging?")
var collection = flag.String("collection", "articles", "The collection to store cleaned articles in.")
var dbname = flag.String("dbname", "ws", "The database name to use.")

var wg sync.WaitGroup

// Titles are unique per wiki; the title is the URL path in wikimedia.
var titleIndex = mgo.Index{
	Key:        []string{"title"},
	Unique:     true,
	DropDups:   true,
	Background: true,
	Sparse:     true,
}

type article struct {
	ID         string   "_id,omitempty"
	URL        string   ",omitempty"
	Title      string   ",omitempty"
	Text       string   ",omitempty"
	Categories []string ",omitempty"
}

func insertArticle(db *mgo.Database, a *wikiplain.Article, cats []string) {
	doc := article{
		ID:         a.ID,
		URL:        a.URL,
		Title:      a.Title,
		Text:       a.Text,
		Categories: cats,
	}
	err := db.C(*collection).Insert(&doc)
	if err != nil {
		if mgo.IsDup(err) {
			if *verbose {
				log.Printf("Duplicate Key Error inserting %s", a.Title)
			}
		} else {
			log.Printf("Error inserting %s: %s", a.Title, err)
		}
	}
}

func loadStream(db *mgo.Database, cleaner *wikiplain.Cleaner,
	r wikiplain.StreamRange, counted chan<- bool) {
	e, err := wikiplain.NewStreamExtractor(*file, r)
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
		insertArticle(db, a, wikiplain.FindCategories(raw.Markup, *lang))
		counted <- true
	}
}

func streamHandler(db *mgo.Database, ch <-chan wikiplain.StreamRange,
	counted chan<- bool) {
	defer wg.Done()
	cleaner := wikiplain.NewCleaner(*lang, *minLen)
	for r := range ch {
		loadStream(db, cleaner, r, counted)
	}
}

func processDump(ranges []wikiplain.StreamRange, db *mgo.Database) {
	ch := make(chan wikiplain.StreamRange, len(ranges))
	counted := make(chan bool, 1000)

	for i := 0; i < *proc; i++ {
		wg.Add(1)
		go streamHandler(db, ch, counted)
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
	reportfreq := int64(10000)
	for range counted {
		articles++
		if articles%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s articles total (%.2f/s)\n",
				humanize.Comma(articles), float64(reportfreq)/d.Seconds())
			prev = now
		}
	}

	d := time.Since(start)
	log.Printf("Loaded %s articles in %v (%.2f a/s)",
		humanize.Comma(articles), d, float64(articles)/d.Seconds())
}

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(*cpus)
	if *file == "" || *index == "" {
		log.Fatal("You must supply a bz2 dump file and its index.")
	}
	session, err := mgo.Dial(*dburl)
	if err != nil {
		panic(err)
	}

	ranges, err := wikiplain.BuildIndex(*index)
	if err != nil {
		log.Fatalf("Error reading index: %v", err)
	}

	err = session.DB(*dbname).C(*collection).EnsureIndex(titleIndex)
	if err != nil {
		log.Fatal("Error creating title index", err)
	}
	processDump(ranges, session.DB(*dbname))
}
