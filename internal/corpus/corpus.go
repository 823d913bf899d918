// Package corpus loads a 20 Newsgroups-style directory tree: one
// subdirectory per class, one posting per file, filenames are message
// numbers.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/crimson-sun/textcat/internal/model"
)

// ErrNoDocuments is returned when the corpus root yields zero documents.
var ErrNoDocuments = errors.New("corpus: no documents found")

// Load walks root and returns one Document per posting file plus the label
// index. Subdirectories are visited in sorted name order and assigned label
// ids 0..N-1 in that order; files within each subdirectory are visited in
// sorted name order. Files whose names are not purely numeric are skipped.
// Content is decoded as Latin-1 and the leading header block (everything
// through the first blank line, when one exists) is dropped.
func Load(root string) ([]model.Document, *model.LabelIndex, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("corpus: %w", err)
	}

	labels := model.NewLabelIndex()
	var docs []model.Document

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := labels.Add(entry.Name())

		dir := filepath.Join(root, entry.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("corpus: %w", err)
		}
		for _, file := range files {
			if file.IsDir() || !isNumericName(file.Name()) {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(dir, file.Name()))
			if err != nil {
				return nil, nil, fmt.Errorf("corpus: %w", err)
			}
			text, err := decodeLatin1(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("corpus: %s: %w", file.Name(), err)
			}
			docs = append(docs, model.Document{
				Text:  stripHeader(text),
				Label: label,
			})
		}
	}

	if len(docs) == 0 {
		return nil, nil, ErrNoDocuments
	}
	return docs, labels, nil
}

// stripHeader drops everything through the first blank line. Postings
// without a blank line are returned whole.
func stripHeader(s string) string {
	if i := strings.Index(s, "\r\n\r\n"); i >= 0 {
		return s[i+4:]
	}
	if i := strings.Index(s, "\n\n"); i >= 0 {
		return s[i+2:]
	}
	return s
}

// isNumericName reports whether the filename consists only of ASCII digits.
func isNumericName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// decodeLatin1 decodes raw bytes as ISO 8859-1, the encoding the dataset is
// distributed in. Every byte is a valid Latin-1 character, so this cannot
// reject a file for encoding reasons.
func decodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
