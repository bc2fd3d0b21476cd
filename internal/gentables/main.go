// Copyright 2024 The unicase Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables verifies the fold table used by unicase against the Unicode
// Character Database. It downloads CaseFolding.txt for the requested
// Unicode version, parses the simple (C and S status) fold entries, and
// checks that tables.CaseFold partitions the assigned code points into
// exactly the equivalence classes the UCD defines.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"

	"github.com/textcase/unicase/internal/tables"
	"github.com/textcase/unicase/internal/tables/assigned"
)

const ucdBaseURL = "https://www.unicode.org/Public"

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

// downloadCaseFolding fetches CaseFolding.txt for a Unicode version.
func downloadCaseFolding(version string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/ucd/CaseFolding.txt", ucdBaseURL, version)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %q: %s", url, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", url, err)
	}
	return data, nil
}

// parseSimpleFolds extracts the common (C) and simple (S) fold mappings
// from CaseFolding.txt. Full (F) and Turkic (T) entries are ignored:
// unicase implements simple folding only.
func parseSimpleFolds(data []byte) (map[rune]rune, error) {
	folds := make(map[rune]rune, 1536)
	scan := bufio.NewScanner(bytes.NewReader(data))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Format: <code>; <status>; <mapping>; # <name>
		fields := strings.SplitN(line, ";", 4)
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed line: %q", line)
		}
		status := strings.TrimSpace(fields[1])
		if status != "C" && status != "S" {
			continue
		}
		from, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed code in line %q: %w", line, err)
		}
		to, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed mapping in line %q: %w", line, err)
		}
		folds[rune(from)] = rune(to)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if len(folds) == 0 {
		return nil, fmt.Errorf("no simple fold entries parsed")
	}
	return folds, nil
}

func newProgressBar(max int64) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(max)
	}
	return progressbar.DefaultSilent(max)
}

// verify checks that tables.CaseFold and the UCD simple folds induce the
// same partition of the assigned code points for the given version.
//
// Write ucd(r) for the UCD simple fold of r (identity if unlisted). Two
// equivalence relations agree iff, for every assigned r:
//
//	CaseFold(r) == CaseFold(ucd(r))   (UCD-equal implies CaseFold-equal)
//	ucd(CaseFold(r)) == ucd(r)        (CaseFold-equal implies UCD-equal)
func verify(version string) error {
	data, err := downloadCaseFolding(version)
	if err != nil {
		return err
	}
	ucdFolds, err := parseSimpleFolds(data)
	if err != nil {
		return fmt.Errorf("parsing CaseFolding.txt for %s: %w", version, err)
	}
	log.Printf("%s: parsed %d simple fold entries", version, len(ucdFolds))

	rt := rangetable.Assigned(version)
	if rt == nil {
		return fmt.Errorf("no assigned code points for Unicode version %q", version)
	}
	all := assigned.AssignedRunes(version)

	ucd := func(r rune) rune {
		if to, ok := ucdFolds[r]; ok {
			return to
		}
		return r
	}

	var bad []rune
	bar := newProgressBar(int64(len(all)))
	for _, r := range all {
		cf := tables.CaseFold(r)
		if tables.CaseFold(ucd(r)) != cf || ucd(cf) != ucd(r) {
			bad = append(bad, r)
		}
		bar.Add(1)
	}
	bar.Finish()

	if len(bad) != 0 {
		// Report by UCD class so related failures group together.
		classes := make(map[rune][]rune)
		for _, r := range bad {
			classes[ucd(r)] = append(classes[ucd(r)], r)
		}
		reps := maps.Keys(classes)
		slices.Sort(reps)
		for _, rep := range reps {
			for _, r := range classes[rep] {
				log.Printf("%s: 0x%04X: CaseFold = 0x%04X; UCD fold = 0x%04X",
					version, r, tables.CaseFold(r), ucd(r))
			}
		}
		return fmt.Errorf("%s: %d code points disagree with the UCD", version, len(bad))
	}
	log.Printf("%s: ok: verified %d assigned code points", version, len(all))
	return nil
}

func main() {
	version := flag.String("unicode", unicode.Version, "Unicode version to verify against")
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := verify(*version); err != nil {
		log.Fatal(err)
	}
}
