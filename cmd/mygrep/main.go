// cmd/mygrep/main.go
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nmeillaya/mygrep/internal/io"
	"github.com/nmeillaya/mygrep/internal/matcher"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "-E" {
		fmt.Fprintf(os.Stderr, "usage: mygrep -E <pattern>\n")
		os.Exit(2)
	}

	pattern := os.Args[2]

	re, err := matcher.NewRegexMatcher(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling regex: %v\n", err)
		os.Exit(1)
	}

	scanner, err := io.ReadLines(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	matchFound := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if _, ok := re.FindSubmatchIndex(line); ok {
			matchFound = true
			fmt.Fprintln(w, scanner.Text())
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	if !matchFound {
		os.Exit(1)
	}
}