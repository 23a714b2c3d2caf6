// Package wikiplain turns compressed multistream wikimedia XML dumps
// into plain-text articles.
//
// The dumps are available from the wikimedia group here:
//    http://dumps.wikimedia.org/
//
// A multistream dump is a series of independently compressed bzip2
// blocks, each holding a batch of <page> elements, and a side-car
// index file naming the byte offset of every block. This package reads
// the index, decompresses one stream at a time, and strips the
// wikitext markup down to readable text.
//
// See the example programs in the tools subdirectory for an idea of
// how these pieces fit together.
package wikiplain
