package stor

import (
	"sync"
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
)

type InMemoryCADFileStor struct {
	mu     sync.Mutex
	files  []model.CADFile
	nextID int

	createErr error
}

func NewInMemoryCADFileStor() *InMemoryCADFileStor {
	return &InMemoryCADFileStor{nextID: 1}
}

// FailCreatesWith makes CreateCADFile return err until it is called again with nil.
func (s *InMemoryCADFileStor) FailCreatesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createErr = err
}

func (s *InMemoryCADFileStor) CreateCADFile(file *model.CADFile) (*model.CADFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, s.createErr
	}

	file.ID = s.nextID
	file.UploadDate = time.Now()
	s.nextID++
	s.files = append(s.files, *file)

	return file, nil
}

func (s *InMemoryCADFileStor) GetCADFileByID(fileID int) (*model.CADFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		if f.ID == fileID {
			return &f, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "cad file %d", fileID)
}

func (s *InMemoryCADFileStor) ListCADFiles() ([]model.CADFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]model.CADFile, len(s.files))
	copy(files, s.files)
	return files, nil
}

func (s *InMemoryCADFileStor) MarkCADFileParsed(file *model.CADFile) (*model.CADFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == file.ID {
			s.files[i].Parsed = true
			file.Parsed = true
			return file, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "cad file %d", file.ID)
}
