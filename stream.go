package wikiplain

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Synthetic root wrapped around each decompressed stream. The pages
// in a stream are sibling elements with no enclosing document, which
// an XML parser will not accept on its own.
const (
	streamOpen  = "<mediawiki>"
	streamClose = "</mediawiki>"
)

// A DecompressionError means a stream's byte range did not decompress:
// the dump is corrupt or the index offsets are misaligned. It is fatal
// to that stream only.
type DecompressionError struct {
	Start int64
	Err   error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("wikiplain: decompressing stream at %v: %v",
		e.Start, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// A ParseError means a decompressed stream contained malformed XML. It
// is fatal to that stream only.
type ParseError struct {
	Start int64
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wikiplain: parsing stream at %v: %v",
		e.Start, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A StreamExtractor yields the articles of one compressed stream
// within a multistream dump.
//
// Ranges never overlap, so any number of extractors may work on the
// same dump file concurrently, each with its own handle.
type StreamExtractor struct {
	f *os.File
	d *xml.Decoder
	r StreamRange
}

// NewStreamExtractor opens dumpPath and prepares to read the stream
// covering r. The caller must Close the extractor when done, whether
// or not iteration ran to completion.
func NewStreamExtractor(dumpPath string, r StreamRange) (*StreamExtractor, error) {
	f, err := os.Open(dumpPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening dump")
	}
	if _, err := f.Seek(r.Start, io.SeekStart); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "seeking to stream at %v", r.Start)
	}
	var src io.Reader = f
	if r.End != ToEOF {
		src = io.LimitReader(f, r.End-r.Start)
	}
	body := io.MultiReader(
		strings.NewReader(streamOpen),
		bzip2.NewReader(src),
		strings.NewReader(streamClose),
	)
	return &StreamExtractor{f: f, d: xml.NewDecoder(body), r: r}, nil
}

// Next returns the next article in the stream, in document order, or
// io.EOF when the stream is exhausted.
func (e *StreamExtractor) Next() (*RawArticle, error) {
	a, err := nextArticle(e.d)
	if err != nil && err != io.EOF {
		return nil, e.classify(err)
	}
	return a, err
}

func (e *StreamExtractor) classify(err error) error {
	switch err := err.(type) {
	case bzip2.StructuralError:
		return &DecompressionError{Start: e.r.Start, Err: err}
	case *xml.SyntaxError:
		return &ParseError{Start: e.r.Start, Err: err}
	}
	return errors.Wrapf(err, "reading stream at %v", e.r.Start)
}

// Close releases the underlying file handle.
func (e *StreamExtractor) Close() error {
	return e.f.Close()
}
