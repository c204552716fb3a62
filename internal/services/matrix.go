package services

import (
	"fmt"

	"github.com/rayenbac/pfe-project/internal/models"
)

// Rating is one cell of the rating matrix. Observed distinguishes a
// real rating from an unrated pair; a zero Value with Observed false
// must never be read as "rated zero".
type Rating struct {
	Value    float64
	Observed bool
}

// RatingMatrix is the user×property pivot of the interaction table.
// Rows and columns exist only for users and properties that appear in
// at least one interaction. Cells for pairs that were rated more than
// once hold the mean rating.
type RatingMatrix struct {
	UserIDs     []string
	PropertyIDs []string

	userIndex map[string]int
	propIndex map[string]int
	cells     [][]Rating
}

// BuildRatingMatrix pivots interactions into a rating matrix. Users
// and properties keep first-seen order so rebuilds from the same data
// are identical. A rating outside [1,5] fails the build.
func BuildRatingMatrix(interactions []models.Interaction) (*RatingMatrix, error) {
	m := &RatingMatrix{
		userIndex: make(map[string]int),
		propIndex: make(map[string]int),
	}

	for _, it := range interactions {
		if it.Rating < 1 || it.Rating > 5 {
			return nil, &DataError{Reason: fmt.Sprintf(
				"interaction (%s, %s) has rating %d outside [1,5]",
				it.UserID, it.PropertyID, it.Rating)}
		}
		if _, ok := m.userIndex[it.UserID]; !ok {
			m.userIndex[it.UserID] = len(m.UserIDs)
			m.UserIDs = append(m.UserIDs, it.UserID)
		}
		if _, ok := m.propIndex[it.PropertyID]; !ok {
			m.propIndex[it.PropertyID] = len(m.PropertyIDs)
			m.PropertyIDs = append(m.PropertyIDs, it.PropertyID)
		}
	}

	// Duplicate (user, property) pairs collapse to the mean rating.
	sums := make([][]float64, len(m.UserIDs))
	counts := make([][]int, len(m.UserIDs))
	for i := range sums {
		sums[i] = make([]float64, len(m.PropertyIDs))
		counts[i] = make([]int, len(m.PropertyIDs))
	}
	for _, it := range interactions {
		u := m.userIndex[it.UserID]
		p := m.propIndex[it.PropertyID]
		sums[u][p] += float64(it.Rating)
		counts[u][p]++
	}

	m.cells = make([][]Rating, len(m.UserIDs))
	for u := range m.cells {
		m.cells[u] = make([]Rating, len(m.PropertyIDs))
		for p := range m.cells[u] {
			if counts[u][p] > 0 {
				m.cells[u][p] = Rating{
					Value:    sums[u][p] / float64(counts[u][p]),
					Observed: true,
				}
			}
		}
	}

	return m, nil
}

// UserIndex returns the row index for a user id.
func (m *RatingMatrix) UserIndex(userID string) (int, bool) {
	i, ok := m.userIndex[userID]
	return i, ok
}

// Rating returns the cell for a (user, property) pair. The second
// return is false when either id is unknown or the pair is unrated.
func (m *RatingMatrix) Rating(userID, propertyID string) (float64, bool) {
	u, ok := m.userIndex[userID]
	if !ok {
		return 0, false
	}
	p, ok := m.propIndex[propertyID]
	if !ok {
		return 0, false
	}
	cell := m.cells[u][p]
	return cell.Value, cell.Observed
}

// Row returns the raw cells of one user row.
func (m *RatingMatrix) Row(userIdx int) []Rating {
	return m.cells[userIdx]
}

// FilledRow returns one user row as a dense vector with unobserved
// cells replaced by 0. Fill-with-zero is a deliberate approximation
// for similarity comparisons, not imputation.
func (m *RatingMatrix) FilledRow(userIdx int) []float64 {
	row := make([]float64, len(m.PropertyIDs))
	for p, cell := range m.cells[userIdx] {
		if cell.Observed {
			row[p] = cell.Value
		}
	}
	return row
}

// FilledRows returns every user row zero-filled, in row order.
func (m *RatingMatrix) FilledRows() [][]float64 {
	rows := make([][]float64, len(m.UserIDs))
	for u := range rows {
		rows[u] = m.FilledRow(u)
	}
	return rows
}
