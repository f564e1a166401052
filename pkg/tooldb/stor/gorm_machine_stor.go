package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"gorm.io/gorm"
)

type GormMachineStor struct {
	db *gorm.DB
}

func NewGormMachineStor(db *gorm.DB) *GormMachineStor {
	return &GormMachineStor{db: db}
}

func (s *GormMachineStor) CreateMachine(machine *model.Machine) (*model.Machine, error) {
	now := time.Now()
	machine.CreatedAt = now
	machine.UpdatedAt = now

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(machine).Error
	})

	if err != nil {
		return nil, err
	}

	return machine, nil
}

func (s *GormMachineStor) GetMachineByID(machineID int) (*model.Machine, error) {
	var machine model.Machine
	if err := s.db.First(&machine, machineID).Error; err != nil {
		return nil, notFoundOr(err, "machine", machineID)
	}

	return &machine, nil
}

func (s *GormMachineStor) ListMachines() ([]model.Machine, error) {
	var machines []model.Machine
	err := s.db.Order("id").Find(&machines).Error
	return machines, err
}
