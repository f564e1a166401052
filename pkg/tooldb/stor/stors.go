package stor

import (
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned, wrapped, by the Get*ByID calls when no record has the given ID.
var ErrNotFound = errors.New("record not found")

type CADFileStor interface {
	CreateCADFile(file *model.CADFile) (*model.CADFile, error)
	GetCADFileByID(fileID int) (*model.CADFile, error)
	ListCADFiles() ([]model.CADFile, error)
	MarkCADFileParsed(file *model.CADFile) (*model.CADFile, error)
}

type CADFeatureStor interface {
	ListFeaturesForCADFile(fileID int) ([]model.CADFeature, error)

	// CreateFeaturesForCADFile stores the features and marks the file as parsed. Either both
	// happen or neither does.
	CreateFeaturesForCADFile(file *model.CADFile, features []model.CADFeature) ([]model.CADFeature, error)
}

type MachineStor interface {
	CreateMachine(machine *model.Machine) (*model.Machine, error)
	GetMachineByID(machineID int) (*model.Machine, error)
	ListMachines() ([]model.Machine, error)
}

type ToolStor interface {
	CreateTool(tool *model.Tool) (*model.Tool, error)
	GetToolByID(toolID int) (*model.Tool, error)

	// ListTools returns all tools in storage order, which is ascending ID.
	ListTools() ([]model.Tool, error)
}

// ReferenceStor replaces the machine and tool tables as a unit. The seed command uses it.
type ReferenceStor interface {
	// ReplaceReferenceData deletes every machine and tool and stores the given ones, in
	// order, in one transaction.
	ReplaceReferenceData(machines []model.Machine, tools []model.Tool) error
}

type Stors struct {
	CADFileStor    CADFileStor
	CADFeatureStor CADFeatureStor
	MachineStor    MachineStor
	ToolStor       ToolStor
	ReferenceStor  ReferenceStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		CADFileStor:    NewGormCADFileStor(db),
		CADFeatureStor: NewGormCADFeatureStor(db),
		MachineStor:    NewGormMachineStor(db),
		ToolStor:       NewGormToolStor(db),
		ReferenceStor:  NewGormReferenceStor(db),
	}
}

func NewInMemoryStors() *Stors {
	fileStor := NewInMemoryCADFileStor()
	machineStor := NewInMemoryMachineStor(nil)
	toolStor := NewInMemoryToolStor(nil)
	return &Stors{
		CADFileStor:    fileStor,
		CADFeatureStor: NewInMemoryCADFeatureStor(fileStor),
		MachineStor:    machineStor,
		ToolStor:       toolStor,
		ReferenceStor:  NewInMemoryReferenceStor(machineStor, toolStor),
	}
}

func notFoundOr(err error, what string, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, "%s %d", what, id)
	}

	return errors.Wrapf(err, "unable to retrieve %s %d", what, id)
}
