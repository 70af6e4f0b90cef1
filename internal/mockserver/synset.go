package mockserver

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSynset is used when no synset file is configured
var DefaultSynset = []string{
	"apple", "banana", "cherry", "grape", "kiwi",
	"lemon", "orange", "pear", "pineapple", "strawberry",
}

// LoadSynset reads one class name per line, skipping blank lines
func LoadSynset(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open synset: %w", err)
	}
	defer file.Close()

	var classes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		classes = append(classes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read synset: %w", err)
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("synset is empty: %s", path)
	}
	return classes, nil
}
