package stor

import (
	"sync"
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
)

type InMemoryCADFeatureStor struct {
	mu       sync.Mutex
	fileStor *InMemoryCADFileStor
	features []model.CADFeature
	nextID   int
}

// NewInMemoryCADFeatureStor creates a feature stor that marks files parsed in fileStor.
func NewInMemoryCADFeatureStor(fileStor *InMemoryCADFileStor) *InMemoryCADFeatureStor {
	return &InMemoryCADFeatureStor{fileStor: fileStor, nextID: 1}
}

func (s *InMemoryCADFeatureStor) ListFeaturesForCADFile(fileID int) ([]model.CADFeature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var features []model.CADFeature
	for _, f := range s.features {
		if f.CADFileID == fileID {
			features = append(features, f)
		}
	}

	return features, nil
}

func (s *InMemoryCADFeatureStor) CreateFeaturesForCADFile(file *model.CADFile, features []model.CADFeature) ([]model.CADFeature, error) {
	if _, err := s.fileStor.MarkCADFileParsed(file); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := range features {
		features[i].ID = s.nextID
		features[i].CADFileID = file.ID
		features[i].CreatedAt = now
		s.nextID++
		s.features = append(s.features, features[i])
	}

	return features, nil
}
