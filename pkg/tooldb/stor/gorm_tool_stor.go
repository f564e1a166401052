package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"gorm.io/gorm"
)

type GormToolStor struct {
	db *gorm.DB
}

func NewGormToolStor(db *gorm.DB) *GormToolStor {
	return &GormToolStor{db: db}
}

func (s *GormToolStor) CreateTool(tool *model.Tool) (*model.Tool, error) {
	now := time.Now()
	tool.CreatedAt = now
	tool.UpdatedAt = now

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(tool).Error
	})

	if err != nil {
		return nil, err
	}

	return tool, nil
}

func (s *GormToolStor) GetToolByID(toolID int) (*model.Tool, error) {
	var tool model.Tool
	if err := s.db.First(&tool, toolID).Error; err != nil {
		return nil, notFoundOr(err, "tool", toolID)
	}

	return &tool, nil
}

func (s *GormToolStor) ListTools() ([]model.Tool, error) {
	var tools []model.Tool
	err := s.db.Order("id").Find(&tools).Error
	return tools, err
}
