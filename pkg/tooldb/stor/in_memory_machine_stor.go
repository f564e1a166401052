package stor

import (
	"sync"
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
)

type InMemoryMachineStor struct {
	mu       sync.Mutex
	machines []model.Machine
}

func NewInMemoryMachineStor(machines []model.Machine) *InMemoryMachineStor {
	return &InMemoryMachineStor{machines: machines}
}

func (s *InMemoryMachineStor) CreateMachine(machine *model.Machine) (*model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	machine.ID = len(s.machines) + 1
	machine.CreatedAt = now
	machine.UpdatedAt = now
	s.machines = append(s.machines, *machine)

	return machine, nil
}

func (s *InMemoryMachineStor) GetMachineByID(machineID int) (*model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.machines {
		if m.ID == machineID {
			return &m, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "machine %d", machineID)
}

func (s *InMemoryMachineStor) ListMachines() ([]model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	machines := make([]model.Machine, len(s.machines))
	copy(machines, s.machines)
	return machines, nil
}
