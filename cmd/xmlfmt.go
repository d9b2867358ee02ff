//go:build ignore

package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/coolbutuseless/minixml"
)

// Read an XML file and print it re-indented
func main() {
	decl := flag.Bool("d", false, "emit the XML declaration")
	keep := flag.Bool("w", false, "keep whitespace-only text")
	flag.Parse()
	args := flag.Args()
	fn := "/dev/stdin"
	if len(args) > 0 {
		fn = args[0]
	}

	f, err := os.Open(fn)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	doc, err := minixml.ParseDocument(bufio.NewReader(f), minixml.KeepWhitespace(*keep))
	if err != nil {
		panic(err)
	}

	doc.Print(minixml.WithDeclaration(*decl))
}
