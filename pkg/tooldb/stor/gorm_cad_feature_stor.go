package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormCADFeatureStor struct {
	db *gorm.DB
}

func NewGormCADFeatureStor(db *gorm.DB) *GormCADFeatureStor {
	return &GormCADFeatureStor{db: db}
}

func (s *GormCADFeatureStor) ListFeaturesForCADFile(fileID int) ([]model.CADFeature, error) {
	var features []model.CADFeature
	err := s.db.Where("cad_file_id = ?", fileID).Order("id").Find(&features).Error
	return features, err
}

func (s *GormCADFeatureStor) CreateFeaturesForCADFile(file *model.CADFile, features []model.CADFeature) ([]model.CADFeature, error) {
	now := time.Now()
	for i := range features {
		features[i].ID = 0
		features[i].CADFileID = file.ID
		features[i].CreatedAt = now
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if len(features) != 0 {
			if err := tx.Create(&features).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.CADFile{ID: file.ID}).Update("parsed", true).Error
	})

	if err != nil {
		return nil, errors.Wrapf(err, "unable to store features for cad file %d", file.ID)
	}

	file.Parsed = true

	return features, nil
}
