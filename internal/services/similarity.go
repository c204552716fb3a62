package services

import (
	"fmt"
	"math"
)

// CosineSimilarities computes the cosine similarity between query and
// every row of rows in one pass, returning one value per row in
// [-1, 1]. A zero vector on either side yields 0 for that row. A row
// whose length differs from the query is a programming error and
// returns a ComputationError.
func CosineSimilarities(query []float64, rows [][]float64) ([]float64, error) {
	var queryNorm float64
	for _, v := range query {
		queryNorm += v * v
	}
	queryNorm = math.Sqrt(queryNorm)

	sims := make([]float64, len(rows))
	if queryNorm == 0 {
		return sims, nil
	}

	for i, row := range rows {
		if len(row) != len(query) {
			return nil, &ComputationError{Reason: fmt.Sprintf(
				"dimension mismatch: query has %d columns, row %d has %d",
				len(query), i, len(row))}
		}
		var dot, norm float64
		for j, v := range row {
			dot += query[j] * v
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		sims[i] = dot / (queryNorm * math.Sqrt(norm))
	}

	return sims, nil
}
