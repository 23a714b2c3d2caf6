package wikiplain

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ToEOF as a StreamRange end means the stream runs to the end of the
// dump file.
const ToEOF = int64(-1)

// A StreamRange is the byte range of one independently compressed
// stream within a multistream dump.
type StreamRange struct {
	Start int64
	End   int64 // the next stream's start, or ToEOF for the last range
}

func (r StreamRange) String() string {
	if r.End == ToEOF {
		return fmt.Sprintf("%v:EOF", r.Start)
	}
	return fmt.Sprintf("%v:%v", r.Start, r.End)
}

// A FormatError reports an index line whose offset field is not a
// decimal integer.
type FormatError struct {
	Line  int
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wikiplain: bad offset %q on index line %v",
		e.Field, e.Line)
}

// ReadRanges parses a decompressed multistream index and returns the
// byte ranges of the streams it names, in ascending order.
//
// Index lines look like offset:id:title. Only the offset is used;
// repeated offsets (one line per article in the stream) collapse into
// a single range. Each range ends where the next begins, and the last
// range ends at ToEOF.
func ReadRanges(r io.Reader) ([]StreamRange, error) {
	seen := map[int64]bool{}
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		field := s.Text()
		if i := strings.IndexByte(field, ':'); i >= 0 {
			field = field[:i]
		}
		offset, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, &FormatError{Line: line, Field: field}
		}
		seen[offset] = true
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading index")
	}

	offsets := make([]int64, 0, len(seen))
	for o := range seen {
		offsets = append(offsets, o)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	ranges := make([]StreamRange, len(offsets))
	for i, o := range offsets {
		end := ToEOF
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		ranges[i] = StreamRange{Start: o, End: end}
	}
	return ranges, nil
}

// BuildIndex reads a bzip2 compressed multistream index file and
// returns its stream ranges.
func BuildIndex(path string) ([]StreamRange, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening index")
	}
	defer f.Close()
	return ReadRanges(bzip2.NewReader(f))
}
