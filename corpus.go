package wikiplain

import (
	"io"
	"log"
	"sync"
)

// A CorpusParser drives the full pipeline: stream ranges from the
// side-car index are fanned out to workers, each of which extracts
// and cleans one stream at a time.
type CorpusParser struct {
	articles chan *Article
}

// NewCorpusParser builds the stream index from indexPath and starts
// numWorkers workers extracting and cleaning dumpPath.
//
// Streams that fail to decompress or parse are logged and skipped;
// articles with unparseable markup are logged and dropped. Neither
// aborts the dump.
func NewCorpusParser(indexPath, dumpPath, lang string, minTextLen, numWorkers int) (*CorpusParser, error) {
	ranges, err := BuildIndex(indexPath)
	if err != nil {
		return nil, err
	}

	p := &CorpusParser{articles: make(chan *Article, 1000)}
	work := make(chan StreamRange, len(ranges))
	for _, r := range ranges {
		work <- r
	}
	close(work)

	wg := sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			cleaner := NewCleaner(lang, minTextLen)
			for r := range work {
				cleanStream(dumpPath, r, cleaner, p.articles)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(p.articles)
	}()

	return p, nil
}

func cleanStream(dumpPath string, r StreamRange, cleaner *Cleaner, out chan<- *Article) {
	e, err := NewStreamExtractor(dumpPath, r)
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
		if a != nil {
			out <- a
		}
	}
}

// Next returns the next cleaned article, or io.EOF once every stream
// has been processed. Articles within one stream arrive in document
// order; order across streams is not deterministic.
func (p *CorpusParser) Next() (*Article, error) {
	a, ok := <-p.articles
	if !ok {
		return nil, io.EOF
	}
	return a, nil
}
