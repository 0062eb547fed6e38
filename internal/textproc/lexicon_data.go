// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Embedded lexicon files, one lowercase entry per line.
//
//go:embed data/stopwords.txt
var stopwordsData []byte

//go:embed data/given_names.txt
var givenNamesData []byte

//go:embed data/org_suffixes.txt
var orgSuffixesData []byte

// Lexicon holds the word lists backing the lexicon engine. All lookups
// are by lowercase form.
type Lexicon struct {
	Stopwords   map[string]bool
	GivenNames  map[string]bool
	OrgSuffixes map[string]bool
}

// lexicon file names expected in an override directory
const (
	stopwordsFile   = "stopwords.txt"
	givenNamesFile  = "given_names.txt"
	orgSuffixesFile = "org_suffixes.txt"
)

// LoadEmbeddedLexicon parses the lexicons compiled into the binary.
func LoadEmbeddedLexicon() (*Lexicon, error) {
	lex := &Lexicon{
		Stopwords:   make(map[string]bool, 128),
		GivenNames:  make(map[string]bool, 192),
		OrgSuffixes: make(map[string]bool, 32),
	}
	if err := readWordList(bytes.NewReader(stopwordsData), lex.Stopwords); err != nil {
		return nil, fmt.Errorf("failed to load embedded stopwords: %w", err)
	}
	if err := readWordList(bytes.NewReader(givenNamesData), lex.GivenNames); err != nil {
		return nil, fmt.Errorf("failed to load embedded given names: %w", err)
	}
	if err := readWordList(bytes.NewReader(orgSuffixesData), lex.OrgSuffixes); err != nil {
		return nil, fmt.Errorf("failed to load embedded org suffixes: %w", err)
	}
	return lex, nil
}

// LoadLexiconDir reads the three lexicon files from dir. All three must
// be present and readable; a partial lexicon would silently weaken
// detection, so any missing file fails the whole load.
func LoadLexiconDir(dir string) (*Lexicon, error) {
	lex := &Lexicon{
		Stopwords:   make(map[string]bool, 128),
		GivenNames:  make(map[string]bool, 192),
		OrgSuffixes: make(map[string]bool, 32),
	}
	files := []struct {
		name string
		into map[string]bool
	}{
		{stopwordsFile, lex.Stopwords},
		{givenNamesFile, lex.GivenNames},
		{orgSuffixesFile, lex.OrgSuffixes},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to open lexicon file %s: %w", path, err)
		}
		err = readWordList(file, f.into)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
		}
	}
	return lex, nil
}

// readWordList reads one lowercase entry per line into the map, skipping
// blank lines and '#' comments.
func readWordList(r io.Reader, into map[string]bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		into[strings.ToLower(word)] = true
	}
	return scanner.Err()
}
