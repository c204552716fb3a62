package dataset

// Source is the data collaborator the engine loads from. The engine
// only needs the three tables back; where they live is the source's
// business.
type Source interface {
	Load() (*Dataset, error)
	Save(ds *Dataset) error
}

// CSVSource reads and writes the three synthetic CSV files in Dir.
type CSVSource struct {
	Dir string
}

func (s *CSVSource) Load() (*Dataset, error) {
	return LoadCSV(s.Dir)
}

func (s *CSVSource) Save(ds *Dataset) error {
	return SaveCSV(ds, s.Dir)
}
