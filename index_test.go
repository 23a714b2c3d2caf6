package wikiplain

import (
	"reflect"
	"strings"
	"testing"
)

const testIndex = `600:10:AccessibleComputing
600:12:Anarchism
600:13:AfghanistanHistory
1200:14:AfghanistanGeography
1200:15:AfghanistanPeople
5000:18:AfghanistanCommunications
`

func TestReadRanges(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader(testIndex))
	if err != nil {
		t.Fatalf("Error reading index: %v", err)
	}
	expected := []StreamRange{
		{600, 1200},
		{1200, 5000},
		{5000, ToEOF},
	}
	if !reflect.DeepEqual(ranges, expected) {
		t.Fatalf("Expected %v, got %v", expected, ranges)
	}
}

func TestReadRangesContiguous(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader(testIndex))
	if err != nil {
		t.Fatalf("Error reading index: %v", err)
	}
	for i, r := range ranges {
		if i > 0 && ranges[i-1].End != r.Start {
			t.Errorf("Range %v starts at %v, previous ended at %v",
				i, r.Start, ranges[i-1].End)
		}
		if i > 0 && r.Start <= ranges[i-1].Start {
			t.Errorf("Range starts not increasing at %v: %v", i, ranges)
		}
	}
	if ranges[len(ranges)-1].End != ToEOF {
		t.Errorf("Final range should end at ToEOF, got %v",
			ranges[len(ranges)-1])
	}
}

func TestReadRangesDuplicates(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader("5:1:a\n5:2:b\n20:3:c\n"))
	if err != nil {
		t.Fatalf("Error reading index: %v", err)
	}
	expected := []StreamRange{{5, 20}, {20, ToEOF}}
	if !reflect.DeepEqual(ranges, expected) {
		t.Fatalf("Expected %v, got %v", expected, ranges)
	}
}

func TestReadRangesUnsorted(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader("20:1:a\n5:2:b\n"))
	if err != nil {
		t.Fatalf("Error reading index: %v", err)
	}
	expected := []StreamRange{{5, 20}, {20, ToEOF}}
	if !reflect.DeepEqual(ranges, expected) {
		t.Fatalf("Expected %v, got %v", expected, ranges)
	}
}

func TestReadRangesEmpty(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Error reading empty index: %v", err)
	}
	if len(ranges) != 0 {
		t.Fatalf("Expected no ranges, got %v", ranges)
	}
}

func TestReadRangesBadOffset(t *testing.T) {
	for _, input := range []string{
		"notanumber:1:a\n",
		"5:1:a\nx7:2:b\n",
		"5.5:1:a\n",
	} {
		_, err := ReadRanges(strings.NewReader(input))
		if err == nil {
			t.Errorf("Expected error on %q, got none", input)
			continue
		}
		if _, ok := err.(*FormatError); !ok {
			t.Errorf("Expected *FormatError on %q, got %T: %v",
				input, err, err)
		}
	}
}

func TestReadRangesTitleWithColons(t *testing.T) {
	// Titles may themselves contain colons.
	ranges, err := ReadRanges(strings.NewReader("7:9:Category:Things\n"))
	if err != nil {
		t.Fatalf("Error reading index: %v", err)
	}
	if len(ranges) != 1 || ranges[0].Start != 7 {
		t.Fatalf("Expected one range at 7, got %v", ranges)
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		r        StreamRange
		expected string
	}{
		{StreamRange{5, 20}, "5:20"},
		{StreamRange{20, ToEOF}, "20:EOF"},
	}
	for _, test := range tests {
		if got := test.r.String(); got != test.expected {
			t.Errorf("Expected %q, got %q", test.expected, got)
		}
	}
}

func TestBuildIndex(t *testing.T) {
	ranges, err := BuildIndex("testdata/index.txt.bz2")
	if err != nil {
		t.Fatalf("Error building index: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("Expected 2 ranges, got %v", ranges)
	}
	if ranges[0].Start != 0 || ranges[0].End != ranges[1].Start {
		t.Errorf("Ranges not contiguous from zero: %v", ranges)
	}
	if ranges[1].End != ToEOF {
		t.Errorf("Final range should end at ToEOF: %v", ranges)
	}
}
