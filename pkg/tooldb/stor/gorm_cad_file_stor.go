package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"gorm.io/gorm"
)

type GormCADFileStor struct {
	db *gorm.DB
}

func NewGormCADFileStor(db *gorm.DB) *GormCADFileStor {
	return &GormCADFileStor{db: db}
}

func (s *GormCADFileStor) CreateCADFile(file *model.CADFile) (*model.CADFile, error) {
	file.UploadDate = time.Now()

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(file).Error
	})

	if err != nil {
		return nil, err
	}

	return file, nil
}

func (s *GormCADFileStor) GetCADFileByID(fileID int) (*model.CADFile, error) {
	var file model.CADFile
	if err := s.db.First(&file, fileID).Error; err != nil {
		return nil, notFoundOr(err, "cad file", fileID)
	}

	return &file, nil
}

func (s *GormCADFileStor) ListCADFiles() ([]model.CADFile, error) {
	var files []model.CADFile
	err := s.db.Order("id").Find(&files).Error
	return files, err
}

func (s *GormCADFileStor) MarkCADFileParsed(file *model.CADFile) (*model.CADFile, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(file).Update("parsed", true).Error
	})

	if err != nil {
		return nil, err
	}

	file.Parsed = true
	return file, nil
}
