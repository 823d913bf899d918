package embedding

import "gonum.org/v1/gonum/mat"

// BuildMatrix projects a learned vocabulary onto the pretrained table,
// producing the dense weight matrix consumed by the models. Row i holds the
// table vector for the token with vocabulary id i; tokens absent from the
// table leave their row all-zero. Row 0 is the padding row and always stays
// zero.
//
// The matrix has min(maxWords, len(index)+1) rows, so every encodable id
// (ids are capped at maxWords during encoding) indexes a valid row. The
// second return value counts in-range vocabulary tokens that had no
// pretrained vector, for diagnostics only.
func BuildMatrix(tbl *Table, index map[string]int, maxWords int) (*mat.Dense, int) {
	rows := len(index) + 1
	if maxWords < rows {
		rows = maxWords
	}
	m := mat.NewDense(rows, tbl.Dim(), nil)

	missing := 0
	for token, id := range index {
		if id >= rows {
			continue
		}
		vec, ok := tbl.Vector(token)
		if !ok {
			missing++
			continue
		}
		m.SetRow(id, vec)
	}
	return m, missing
}
