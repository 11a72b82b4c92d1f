// Command fqdn parses and inspects fully qualified domain names.
//
// It accepts a dotted name (or, with -bytes, a hex wire encoding), validates
// it under the selected policy, and prints the requested projections: the
// canonical text form, the hex wire dump, the hierarchy chain, the labels
// and the Unicode display form. Exit status is 1 on validation failure.
//
// Examples:
//
//	fqdn -name rust-lang.GitHub.com. -wire -tree
//	fqdn -bytes 0667697468756203636f6d00 -labels
//	fqdn -policy strict -name github.com
//	fqdn -name www.github.com. -compare GitHub.com.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Orange-OpenSource/fqdn"
	"github.com/Orange-OpenSource/fqdn/internal/logging"
)

func main() {
	var (
		name     = flag.String("name", "", "Domain name to parse (dotted form)")
		rawBytes = flag.String("bytes", "", "Wire encoding to validate (hex, spaces allowed)")
		policy   = flag.String("policy", "default", "Validation policy: default or strict")
		idn      = flag.Bool("idn", false, "Enable Unicode labels (punycode transcoding)")
		wire     = flag.Bool("wire", false, "Print the hex wire encoding")
		tree     = flag.Bool("tree", false, "Print the hierarchy, one parent per line")
		labels   = flag.Bool("labels", false, "Print the labels, outermost first")
		unicode  = flag.Bool("unicode", false, "Print the Unicode display form")
		compare  = flag.String("compare", "", "Compare against another dotted name")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates validity)")
		logLevel = flag.String("log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")
	)
	flag.Parse()

	logging.Configure(logging.Config{Level: *logLevel})

	p, err := selectPolicy(*policy, *idn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fqdn: %v\n", err)
		os.Exit(2)
	}

	f, err := parseInput(p, *name, *rawBytes, flag.Args())
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "fqdn: %v\n", err)
		}
		os.Exit(1)
	}
	slog.Debug("parsed", "name", f.String(), "depth", f.Depth(), "encoded_len", len(f.Bytes()))

	if *quiet {
		return
	}

	fmt.Println(p.Render(f.Ref))
	if *wire {
		fmt.Printf("wire: %s\n", hexDump(f.Bytes()))
	}
	if *tree {
		for it := f.Hierarchy(); it.Next(); {
			fmt.Printf("  %s\n", p.Render(it.Domain()))
		}
	}
	if *labels {
		for _, label := range f.Labels() {
			fmt.Printf("  %s\n", label)
		}
	}
	if *unicode {
		fmt.Printf("unicode: %s\n", f.Unicode())
	}
	if *compare != "" {
		other, err := p.Parse(*compare)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fqdn: -compare: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("equal: %v\n", f.Equal(other.Ref))
		fmt.Printf("subdomain-of: %v\n", f.IsSubdomainOf(other.Ref))
		fmt.Printf("ordering: %d\n", f.Compare(other.Ref))
	}
}

func selectPolicy(name string, idn bool) (fqdn.Policy, error) {
	var p fqdn.Policy
	switch strings.ToLower(name) {
	case "default", "":
		p = fqdn.Default
	case "strict":
		p = fqdn.StrictRFC1035
	default:
		return fqdn.Policy{}, fmt.Errorf("unknown policy %q (want default or strict)", name)
	}
	p.IDN = idn
	return p, nil
}

// parseInput builds the FQDN from whichever input was given: -bytes wins,
// then -name, then the first positional argument.
func parseInput(p fqdn.Policy, name, rawBytes string, args []string) (fqdn.FQDN, error) {
	if rawBytes != "" {
		wire, err := hex.DecodeString(strings.ReplaceAll(rawBytes, " ", ""))
		if err != nil {
			return fqdn.FQDN{}, fmt.Errorf("invalid hex: %w", err)
		}
		return p.FromBytes(wire)
	}
	if name == "" && len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "Usage: fqdn [-policy default|strict] [flags] NAME")
		flag.PrintDefaults()
		os.Exit(2)
	}
	return p.Parse(name)
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}
