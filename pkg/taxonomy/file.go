package taxonomy

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// FromFile reads a dataset snapshot lazily. The file is loaded once, on
// first query, so both Source calls observe the same snapshot.
func FromFile(path string) *FileSource {
	return &FileSource{path: path}
}

type FileSource struct {
	path string
	once sync.Once
	ds   Dataset
	err  error
}

func (s *FileSource) CurrentVersion() (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	return s.ds.Version, nil
}

func (s *FileSource) SortedClassifiers() ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.ds.Classifiers, nil
}

func (s *FileSource) load() error {
	s.once.Do(func() {
		s.ds, s.err = readDataset(s.path)
	})
	return s.err
}

func readDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}

	if ds.Version == "" {
		return Dataset{}, fmt.Errorf("%w: %s: dataset has no version", ErrUnavailable, path)
	}
	if len(ds.Classifiers) == 0 {
		return Dataset{}, fmt.Errorf("%w: %s: dataset has no classifiers", ErrUnavailable, path)
	}

	return ds, nil
}
