package services

import (
	"math"
	"sort"

	"github.com/rayenbac/pfe-project/internal/models"
)

// FeatureMatrix holds one numeric vector per property: one-hot type
// columns, one-hot location columns, then standardized price, bedrooms
// and bathrooms. The column set is frozen at build time; a value that
// was not present when the matrix was built cannot be represented.
type FeatureMatrix struct {
	PropertyIDs []string
	Columns     []string

	propIndex map[string]int
	rows      [][]float64
}

// BuildFeatureMatrix derives the content-feature matrix from the
// property table. Categorical columns are sorted within each group so
// rebuilds from equal data align column-for-column. An empty property
// set fails the build: the scaler statistics would be undefined.
func BuildFeatureMatrix(properties []models.Property) (*FeatureMatrix, error) {
	if len(properties) == 0 {
		return nil, &DataError{Reason: "cannot build feature matrix from empty property set"}
	}

	types := distinctSorted(properties, func(p models.Property) string { return p.Type })
	locations := distinctSorted(properties, func(p models.Property) string { return p.Location })

	typeCol := make(map[string]int, len(types))
	for i, t := range types {
		typeCol[t] = i
	}
	locCol := make(map[string]int, len(locations))
	for i, l := range locations {
		locCol[l] = len(types) + i
	}

	columns := make([]string, 0, len(types)+len(locations)+3)
	for _, t := range types {
		columns = append(columns, "type_"+t)
	}
	for _, l := range locations {
		columns = append(columns, "location_"+l)
	}
	columns = append(columns, "price", "bedrooms", "bathrooms")

	// Scaler statistics are fit once over the full property set.
	prices := make([]float64, len(properties))
	bedrooms := make([]float64, len(properties))
	bathrooms := make([]float64, len(properties))
	for i, p := range properties {
		prices[i] = float64(p.Price)
		bedrooms[i] = float64(p.Bedrooms)
		bathrooms[i] = float64(p.Bathrooms)
	}
	priceScaler := fitScaler(prices)
	bedroomScaler := fitScaler(bedrooms)
	bathroomScaler := fitScaler(bathrooms)

	m := &FeatureMatrix{
		Columns:   columns,
		propIndex: make(map[string]int, len(properties)),
	}
	numericBase := len(types) + len(locations)

	for _, p := range properties {
		row := make([]float64, len(columns))
		row[typeCol[p.Type]] = 1
		row[locCol[p.Location]] = 1
		row[numericBase] = priceScaler.transform(float64(p.Price))
		row[numericBase+1] = bedroomScaler.transform(float64(p.Bedrooms))
		row[numericBase+2] = bathroomScaler.transform(float64(p.Bathrooms))

		m.propIndex[p.ID] = len(m.PropertyIDs)
		m.PropertyIDs = append(m.PropertyIDs, p.ID)
		m.rows = append(m.rows, row)
	}

	return m, nil
}

// Vector returns the feature vector for a property id.
func (m *FeatureMatrix) Vector(propertyID string) ([]float64, bool) {
	i, ok := m.propIndex[propertyID]
	if !ok {
		return nil, false
	}
	return m.rows[i], true
}

// Rows returns every feature vector in property order.
func (m *FeatureMatrix) Rows() [][]float64 {
	return m.rows
}

// Dim returns the number of feature columns.
func (m *FeatureMatrix) Dim() int {
	return len(m.Columns)
}

type scaler struct {
	mean float64
	std  float64
}

// fitScaler computes mean and population standard deviation.
func fitScaler(values []float64) scaler {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return scaler{mean: mean, std: math.Sqrt(variance)}
}

// transform standardizes one value. A zero-variance column maps to 0
// for every property rather than dividing by zero.
func (s scaler) transform(v float64) float64 {
	if s.std == 0 {
		return 0
	}
	return (v - s.mean) / s.std
}

func distinctSorted(properties []models.Property, key func(models.Property) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range properties {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
