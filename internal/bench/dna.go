package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single input line. Unwrapped genomes can be long.
const maxLineSize = 64 * 1024 * 1024

// LoadDNA reads DNA text from r.
//
// Lines starting with '>' are FASTA headers and are skipped. All whitespace
// is dropped and the remaining text is lower-cased. No alphabet validation
// is performed.
func LoadDNA(r io.Reader) (string, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			continue
		}
		for _, b := range line {
			switch b {
			case ' ', '\t', '\r', '\n', '\v', '\f':
				continue
			}
			if 'A' <= b && b <= 'Z' {
				b += 'a' - 'A'
			}
			sb.WriteByte(b)
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading dna: %w", err)
	}
	return sb.String(), nil
}

// LoadDNAFile reads DNA text from the file at path.
func LoadDNAFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening dna source: %w", err)
	}
	defer f.Close()

	dna, err := LoadDNA(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return dna, nil
}
