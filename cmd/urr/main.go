// Command urr reads a record-based file and converts it to a human-readable
// format (text, csv or tag), driven by a layout file (XML, YAML or JSON).
//
// Usage:
//
//	urr -i world_data.txt -l world_data.xml -o csv
//	urr -i data.txt.gz -l layout.yaml --filter "POPULATION > 1000000" -o text
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	rbf "github.com/reoring/rbf"
	"github.com/reoring/rbf/filter"
	"github.com/reoring/rbf/layoutfile"
	"github.com/reoring/rbf/writer"
)

func main() {
	var (
		input      = flag.StringP("input", "i", "", "record-based file to read (.gz accepted)")
		layoutPath = flag.StringP("layout", "l", "", "layout file describing the input (xml, yaml or json)")
		format     = flag.StringP("output", "o", "text", "output format: text, csv or tag")
		outPath    = flag.String("out", "", "output file (default: input file plus format extension)")
		fields     = flag.String("fields", "", "only write the listed records/fields, e.g. \"CONT:NAME,AREA;COUN:NAME\"")
		fieldsFile = flag.String("fields-file", "", "file holding one records/fields entry per line")
		skip       = flag.StringSlice("skip-fields", nil, "field names to drop from every record")
		filterExpr = flag.String("filter", "", "only write records matching the conditions, e.g. \"F1 = 10;F2 ~ ^X\"")
		ignore     = flag.String("ignore", "", "regex of lines to drop before classification")
		mapSpec    = flag.String("map", "", "line classifier, overriding the layout map: prefix:N, range:LO..HI or constant:KEY")
		sample     = flag.IntP("sample", "s", 0, "stop after N records (0 = all)")
		strict     = flag.Bool("strict", false, "fail on lines whose key is absent from the layout")
		onlyRead   = flag.BoolP("only-read", "b", false, "read the input without writing (benchmark)")
		verbose    = flag.BoolP("verbose", "v", false, "print layout and summary information")
	)
	flag.Parse()

	if *input == "" || *layoutPath == "" {
		fmt.Fprintln(os.Stderr, "urr: both --input and --layout are required")
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()

	doc, err := layoutfile.Load(*layoutPath)
	fatalIf(err)
	layout, err := rbf.Build(doc.Definition)
	fatalIf(err)

	if *verbose {
		fmt.Fprintf(os.Stderr, "info: layout <%s> with %d record type(s)\n", *layoutPath, layout.Len())
	}

	var recFilter filter.RecordFilter
	if *filterExpr != "" {
		recFilter, err = filter.Parse(*filterExpr)
		fatalIf(err)
		fatalIf(recFilter.Check(layout))
	}

	if *fields != "" {
		fatalIf(layout.Simplify(splitEntries(*fields, ";")))
	} else if *fieldsFile != "" {
		data, err := os.ReadFile(*fieldsFile)
		fatalIf(err)
		fatalIf(layout.Simplify(splitEntries(string(data), "\n")))
	}
	if len(*skip) > 0 {
		layout.Prune(*skip...)
	}

	classify, err := buildClassifier(*mapSpec, doc.Map)
	fatalIf(err)

	opt := rbf.ReadOpt{Strict: *strict}
	if *ignore != "" {
		re, err := regexp.Compile(*ignore)
		fatalIf(err)
		opt.Ignore = re
	}
	if *verbose {
		opt.IssueSink = func(it rbf.Issue) { fmt.Fprintf(os.Stderr, "warn: %s\n", it.Error()) }
	}

	rd, err := rbf.Open(*input, layout, classify, opt)
	fatalIf(err)
	defer rd.Close()

	var out writer.Writer
	if !*onlyRead {
		path := *outPath
		if path == "" {
			path = *input + "." + *format
		}
		f, err := os.Create(path)
		fatalIf(err)
		defer f.Close()
		out, err = writer.New(*format, f)
		fatalIf(err)
	}

	var written int
	for rd.Next() {
		if *onlyRead {
			continue
		}
		rec := rd.Record()
		if *filterExpr != "" && !recFilter.Match(rec) {
			continue
		}
		fatalIf(out.Write(rec))
		written++
		if *sample > 0 && written >= *sample {
			break
		}
	}
	fatalIf(rd.Err())
	if out != nil {
		fatalIf(out.Close())
	}

	if *verbose {
		st := rd.Stats()
		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "info: %d line(s), %d byte(s), %d skipped, %d written in %s\n",
			st.Lines, st.Bytes, st.Skipped, written, elapsed.Round(time.Millisecond))
		if secs := elapsed.Seconds(); secs > 0 {
			fmt.Fprintf(os.Stderr, "info: average %.0f lines/s\n", float64(st.Lines)/secs)
		}
	}
}

// buildClassifier resolves the classifier from the command line when given,
// then the layout's own map declaration, then the historical default of the
// first four characters.
func buildClassifier(cli string, fromLayout layoutfile.MapSpec) (rbf.Classifier, error) {
	if cli != "" {
		kind, domain, _ := strings.Cut(cli, ":")
		return layoutfile.MapSpec{Type: kind, Domain: domain}.Classifier()
	}
	if fromLayout.Type != "" {
		return fromLayout.Classifier()
	}
	return rbf.ClassifyPrefix(4), nil
}

func splitEntries(s, sep string) []string {
	var out []string
	for _, e := range strings.Split(s, sep) {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func fatalIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
