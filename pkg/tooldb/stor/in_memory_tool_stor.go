package stor

import (
	"sync"
	"time"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
)

// InMemoryToolStor keeps tools in the order they were given or created, which stands in
// for storage order.
type InMemoryToolStor struct {
	mu    sync.Mutex
	tools []model.Tool
}

func NewInMemoryToolStor(tools []model.Tool) *InMemoryToolStor {
	return &InMemoryToolStor{tools: tools}
}

func (s *InMemoryToolStor) CreateTool(tool *model.Tool) (*model.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	tool.ID = len(s.tools) + 1
	tool.CreatedAt = now
	tool.UpdatedAt = now
	s.tools = append(s.tools, *tool)

	return tool, nil
}

func (s *InMemoryToolStor) GetToolByID(toolID int) (*model.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tools {
		if t.ID == toolID {
			return &t, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "tool %d", toolID)
}

func (s *InMemoryToolStor) ListTools() ([]model.Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tools := make([]model.Tool, len(s.tools))
	copy(tools, s.tools)
	return tools, nil
}
