package embedding

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Table holds pretrained word vectors loaded from a GloVe-style text file.
// Read-only after LoadTable returns.
type Table struct {
	vectors map[string][]float64
	dim     int
}

// LoadTable reads a file of whitespace-separated lines, each a token
// followed by the components of its vector. The first line fixes the vector
// dimension; any later line with a different field count is a fatal parse
// error. If a token repeats, the last occurrence wins.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	defer f.Close()

	vectors := make(map[string][]float64, 400000)
	dim := 0
	lineNo := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if dim == 0 {
			dim = len(fields) - 1
			if dim == 0 {
				return nil, fmt.Errorf("embedding: line %d: token with no vector components", lineNo)
			}
		}
		if len(fields)-1 != dim {
			return nil, fmt.Errorf("embedding: line %d: %d vector components, want %d",
				lineNo, len(fields)-1, dim)
		}
		vec := make([]float64, dim)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("embedding: line %d: %w", lineNo, err)
			}
			vec[i] = v
		}
		vectors[fields[0]] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("embedding: read error: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedding: file is empty: %s", path)
	}

	return &Table{vectors: vectors, dim: dim}, nil
}

// Dim returns the vector dimension.
func (t *Table) Dim() int {
	return t.dim
}

// Len returns the number of distinct tokens in the table.
func (t *Table) Len() int {
	return len(t.vectors)
}

// Vector returns the pretrained vector for a token. The returned slice is
// shared; callers must not modify it.
func (t *Table) Vector(token string) ([]float64, bool) {
	vec, ok := t.vectors[token]
	return vec, ok
}
