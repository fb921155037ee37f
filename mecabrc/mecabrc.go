// Package mecabrc locates and parses a MeCab-style configuration file: a
// flat sequence of "key = value" lines of which this module reads dicdir,
// the directory holding sys.dic, unk.dic, char.bin and matrix.bin, and the
// optional userdic, the path of a user dictionary.
package mecabrc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/exp/maps"
)

// ErrConfigMissing is returned by Find when no mecabrc exists at the
// MECABRC environment variable or either hard-coded candidate path.
var ErrConfigMissing = errors.New("mecabrc: no configuration file found")

// ErrNoDicDir is returned by DicDir when a parsed configuration map has
// no dicdir entry and MECAB_DICDIR is unset.
var ErrNoDicDir = errors.New("mecabrc: configuration has no dicdir entry")

var kvLine = regexp.MustCompile(`^(\S+)\s*=\s*(\S+)`)

// candidatePaths are consulted, in order, after the MECABRC environment
// variable, matching the two locations the reference mecab installs to.
var candidatePaths = []string{"/usr/local/etc/mecabrc", "/etc/mecabrc"}

// Find locates a mecabrc file. It honors the MECABRC environment
// variable before falling back to the hard-coded candidate paths; this
// override is not present in the original reference implementation but
// matches how deployments commonly relocate config without root access
// to /etc.
func Find() (string, error) {
	if p := os.Getenv("MECABRC"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	for _, p := range candidatePaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrConfigMissing
}

// Parse reads path line by line and extracts every "key = value" pair,
// tolerating blank lines, comments, and any other line that does not
// match the pattern.
func Parse(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mecabrc: %w", err)
	}
	defer f.Close()

	rc := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := kvLine.FindStringSubmatch(scanner.Text()); m != nil {
			rc[m[1]] = m[2]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mecabrc: reading %q: %w", path, err)
	}
	return rc, nil
}

// DicDir resolves the dictionary directory a Tokenizer should use: the
// MECAB_DICDIR environment variable if set, otherwise the dicdir entry
// of rc. Returns ErrNoDicDir if neither is available.
func DicDir(rc map[string]string) (string, error) {
	if d := os.Getenv("MECAB_DICDIR"); d != "" {
		return d, nil
	}
	if d, ok := rc["dicdir"]; ok {
		return d, nil
	}
	return "", ErrNoDicDir
}

// UserDic resolves an optional user dictionary path: the MECAB_USERDIC
// environment variable if set, otherwise rc's userdic entry, if any.
func UserDic(rc map[string]string) (string, bool) {
	if d := os.Getenv("MECAB_USERDIC"); d != "" {
		return d, true
	}
	d, ok := rc["userdic"]
	return d, ok
}

// Keys returns the configuration keys rc declares, for diagnostics and
// tests that assert on what a mecabrc actually set.
func Keys(rc map[string]string) []string {
	return maps.Keys(rc)
}
