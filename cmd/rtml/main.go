// Command rtml compiles .rtml template files into Go source. Each input
// file produces a <name>_rtml.go file beside it in the same package.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rtml-dev/rtml/generator"
	"github.com/rtml-dev/rtml/parser"
)

var dir string
var verbose bool

func main() {
	flag.StringVar(&dir, "dir", ".", "directory to scan for .rtml files")
	flag.BoolVar(&verbose, "v", false, "log every compiled file")
	flag.Parse()
	log.SetFlags(0)

	failed := false
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".rtml" {
			return nil
		}
		if compile(path) {
			if verbose {
				log.Println("compiled " + path)
			}
		} else {
			failed = true
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}

// compile parses and generates one file, reporting diagnostics to stderr.
func compile(path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Println(err)
		return false
	}

	f, err := parser.ParseFile(path, string(src))
	if err != nil {
		report(err)
		return false
	}

	out, err := generator.File(f)
	if err != nil {
		report(err)
		return false
	}

	outPath := strings.TrimSuffix(path, ".rtml") + "_rtml.go"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		log.Println(err)
		return false
	}
	return true
}

func report(err error) {
	if list, ok := err.(parser.ErrorList); ok {
		for _, e := range list {
			fmt.Fprintln(os.Stderr, e)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
