package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormReferenceStor struct {
	db *gorm.DB
}

func NewGormReferenceStor(db *gorm.DB) *GormReferenceStor {
	return &GormReferenceStor{db: db}
}

func (s *GormReferenceStor) ReplaceReferenceData(machines []model.Machine, tools []model.Tool) error {
	now := time.Now()
	for i := range machines {
		machines[i].CreatedAt = now
		machines[i].UpdatedAt = now
	}

	for i := range tools {
		tools[i].CreatedAt = now
		tools[i].UpdatedAt = now
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		// A failed attempt may have assigned IDs.
		for i := range machines {
			machines[i].ID = 0
		}
		for i := range tools {
			tools[i].ID = 0
		}

		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&model.Tool{}).Error; err != nil {
			return err
		}

		if err := all.Delete(&model.Machine{}).Error; err != nil {
			return err
		}

		if len(machines) != 0 {
			if err := tx.Create(&machines).Error; err != nil {
				return err
			}
		}

		if len(tools) != 0 {
			if err := tx.Create(&tools).Error; err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "unable to replace machines and tools")
}
