package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rayenbac/pfe-project/internal/models"
)

// File names match the ones the synthetic generator writes.
const (
	UsersFile        = "synthetic_users.csv"
	PropertiesFile   = "synthetic_properties.csv"
	InteractionsFile = "synthetic_interactions.csv"
)

// LoadCSV reads the three tables from dir. Any structural problem
// (missing file, bad header, unparseable numeric field) aborts the
// load; the engine never starts on partial data.
func LoadCSV(dir string) (*Dataset, error) {
	ds := &Dataset{}

	userRows, err := readCSV(filepath.Join(dir, UsersFile))
	if err != nil {
		return nil, err
	}
	for i, row := range userRows {
		u, err := parseUser(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", UsersFile, i+2, err)
		}
		ds.Users = append(ds.Users, u)
	}

	propRows, err := readCSV(filepath.Join(dir, PropertiesFile))
	if err != nil {
		return nil, err
	}
	for i, row := range propRows {
		p, err := parseProperty(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", PropertiesFile, i+2, err)
		}
		ds.Properties = append(ds.Properties, p)
	}

	interRows, err := readCSV(filepath.Join(dir, InteractionsFile))
	if err != nil {
		return nil, err
	}
	for i, row := range interRows {
		it, err := parseInteraction(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", InteractionsFile, i+2, err)
		}
		ds.Interactions = append(ds.Interactions, it)
	}

	return ds, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}
	// Drop the header row.
	return rows[1:], nil
}

func parseUser(row []string) (models.User, error) {
	if len(row) < 4 {
		return models.User{}, fmt.Errorf("expected 4 columns, got %d", len(row))
	}
	age, err := strconv.Atoi(row[1])
	if err != nil {
		return models.User{}, fmt.Errorf("age %q: %w", row[1], err)
	}
	return models.User{
		ID:       row[0],
		Age:      age,
		Location: row[2],
		UserType: row[3],
	}, nil
}

func parseProperty(row []string) (models.Property, error) {
	if len(row) < 6 {
		return models.Property{}, fmt.Errorf("expected 6 columns, got %d", len(row))
	}
	price, err := strconv.Atoi(row[2])
	if err != nil {
		return models.Property{}, fmt.Errorf("price %q: %w", row[2], err)
	}
	bedrooms, err := strconv.Atoi(row[4])
	if err != nil {
		return models.Property{}, fmt.Errorf("bedrooms %q: %w", row[4], err)
	}
	bathrooms, err := strconv.Atoi(row[5])
	if err != nil {
		return models.Property{}, fmt.Errorf("bathrooms %q: %w", row[5], err)
	}
	return models.Property{
		ID:        row[0],
		Type:      row[1],
		Price:     price,
		Location:  row[3],
		Bedrooms:  bedrooms,
		Bathrooms: bathrooms,
	}, nil
}

func parseInteraction(row []string) (models.Interaction, error) {
	if len(row) < 4 {
		return models.Interaction{}, fmt.Errorf("expected 4 columns, got %d", len(row))
	}
	rating, err := strconv.Atoi(row[2])
	if err != nil {
		return models.Interaction{}, fmt.Errorf("rating %q: %w", row[2], err)
	}
	return models.Interaction{
		UserID:          row[0],
		PropertyID:      row[1],
		Rating:          rating,
		InteractionType: row[3],
	}, nil
}

// SaveCSV writes the three tables under dir with the canonical headers.
func SaveCSV(ds *Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	users := [][]string{{"user_id", "age", "location", "user_type"}}
	for _, u := range ds.Users {
		users = append(users, []string{u.ID, strconv.Itoa(u.Age), u.Location, u.UserType})
	}
	if err := writeCSV(filepath.Join(dir, UsersFile), users); err != nil {
		return err
	}

	props := [][]string{{"property_id", "type", "price", "location", "bedrooms", "bathrooms"}}
	for _, p := range ds.Properties {
		props = append(props, []string{
			p.ID, p.Type, strconv.Itoa(p.Price), p.Location,
			strconv.Itoa(p.Bedrooms), strconv.Itoa(p.Bathrooms),
		})
	}
	if err := writeCSV(filepath.Join(dir, PropertiesFile), props); err != nil {
		return err
	}

	inters := [][]string{{"user_id", "property_id", "rating", "interaction_type"}}
	for _, it := range ds.Interactions {
		inters = append(inters, []string{it.UserID, it.PropertyID, strconv.Itoa(it.Rating), it.InteractionType})
	}
	return writeCSV(filepath.Join(dir, InteractionsFile), inters)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
