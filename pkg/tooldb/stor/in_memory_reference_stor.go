package stor

import (
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
)

type InMemoryReferenceStor struct {
	machineStor *InMemoryMachineStor
	toolStor    *InMemoryToolStor
}

func NewInMemoryReferenceStor(machineStor *InMemoryMachineStor, toolStor *InMemoryToolStor) *InMemoryReferenceStor {
	return &InMemoryReferenceStor{machineStor: machineStor, toolStor: toolStor}
}

// ReplaceReferenceData holds both stors' locks so readers never see one table replaced
// without the other.
func (s *InMemoryReferenceStor) ReplaceReferenceData(machines []model.Machine, tools []model.Tool) error {
	s.machineStor.mu.Lock()
	defer s.machineStor.mu.Unlock()
	s.toolStor.mu.Lock()
	defer s.toolStor.mu.Unlock()

	now := time.Now()

	s.machineStor.machines = make([]model.Machine, 0, len(machines))
	for i := range machines {
		machines[i].ID = i + 1
		machines[i].CreatedAt = now
		machines[i].UpdatedAt = now
		s.machineStor.machines = append(s.machineStor.machines, machines[i])
	}

	s.toolStor.tools = make([]model.Tool, 0, len(tools))
	for i := range tools {
		tools[i].ID = i + 1
		tools[i].CreatedAt = now
		tools[i].UpdatedAt = now
		s.toolStor.tools = append(s.toolStor.tools, tools[i])
	}

	return nil
}
