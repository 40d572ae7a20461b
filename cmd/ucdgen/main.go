// Command ucdgen reads the Unicode Character Database and the DUCET and
// writes compact Go source tables for a normalization/collation runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dropbox/miniutf/internal/must"
	"github.com/dropbox/miniutf/internal/ucd"
	"github.com/dropbox/miniutf/internal/ucdgen"
)

var (
	mode = flag.String("mode", "default", "table set to emit: \"default\" or \"collation\"")
	ucdDir = flag.String("ucd", "", "directory containing UnicodeData.txt, CompositionExclusions.txt, allkeys.txt")
	out = flag.String("out", "", "output .go file path")
	pkg = flag.String("pkg", "tables", "package clause for the emitted file")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "ucdgen: fatal:", r)
			os.Exit(1)
		}
	}()

	flag.Parse()
	if *ucdDir == "" {
		panic(fmt.Errorf("-ucd is required"))
	}
	if *out == "" {
		panic(fmt.Errorf("-out is required"))
	}

	data := must.Result(ucd.Load(*ucdDir))

	var source string
	var sizes []ucdgen.NamedSize

	switch *mode {
	case "default":
		tables := must.Result(ucdgen.BuildDefaultTables(data))
		source = ucdgen.EmitDefault(*pkg, tables)
		sizes = ucdgen.DefaultTableSizes(tables)
	case "collation":
		ducet := must.Result(ucdgen.BuildCollationTables(data))
		source = ucdgen.EmitCollation(*pkg, ducet)
		sizes = ucdgen.CollationTableSizes(ducet)
	default:
		panic(fmt.Errorf("unrecognized -mode %q, want \"default\" or \"collation\"", *mode))
	}

	writeAtomic(*out, source)

	total := 0
	for _, s := range sizes {
		fmt.Fprintf(os.Stderr, "%s: %d bytes\n", s.Name, s.Bytes)
		total += s.Bytes
	}
	fmt.Fprintf(os.Stderr, "total: %d bytes\n", total)
}

// writeAtomic writes content to a temporary file in the same directory as
// path and renames it into place, so a failure partway through never
// leaves a truncated or half-written table file for a build to pick up.
func writeAtomic(path, content string) {
	tmp := path + ".tmp"
	must.Check(os.WriteFile(tmp, []byte(content), 0644))
	must.Check(os.Rename(tmp, path))
}
