// Command morph reads Japanese text from stdin, one line at a time, and
// prints its morphological analysis to stdout in MeCab's tab-separated
// surface/feature format, terminated by a bare "EOS" line per input line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"yomu.dev/go/morph"
)

func main() {
	nbest := flag.Int("N", 1, "print the N best segmentations per line instead of just the best one")
	flag.IntVar(nbest, "nbest", 1, "alias for -N")
	dicDir := flag.String("d", "", "dictionary directory (overrides dicdir from mecabrc)")
	flag.StringVar(dicDir, "dicdir", "", "alias for -d")
	rcFile := flag.String("r", "", "mecabrc path (default: search standard locations)")
	flag.StringVar(rcFile, "rcfile", "", "alias for -r")
	pretty := flag.Bool("pretty", false, "colorize feature strings when stdout is a terminal")
	flag.Parse()

	tok, err := open(*rcFile, *dicDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "morph: %v\n", err)
		os.Exit(1)
	}
	defer tok.Close()

	color := *pretty && term.IsTerminal(int(os.Stdout.Fd()))

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if *nbest <= 1 {
			printTokens(w, tok.Tokenize(line), color)
			continue
		}
		for i, path := range tok.TokenizeNBest(line, *nbest) {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printTokens(w, path, color)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "morph: reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func open(rcFile, dicDir string) (*morph.Tokenizer, error) {
	if dicDir != "" {
		return morph.OpenWithDicDir(dicDir, "")
	}
	return morph.Open(rcFile)
}

func printTokens(w *bufio.Writer, tokens []morph.Token, color bool) {
	for _, t := range tokens {
		if color {
			fmt.Fprintf(w, "%s\t\x1b[36m%s\x1b[0m\n", t.Surface, t.Feature)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", t.Surface, t.Feature)
		}
	}
	fmt.Fprintln(w, "EOS")
}
