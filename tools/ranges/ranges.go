// Print the stream byte ranges named by a multistream index file.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-wikiplain"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s wikisource.index.bz2", os.Args[0])
	}

	ranges, err := wikiplain.BuildIndex(os.Args[1])
	if err != nil {
		log.Fatalf("Error reading index: %v", err)
	}

	for _, r := range ranges {
		fmt.Println(r.String())
	}
}
