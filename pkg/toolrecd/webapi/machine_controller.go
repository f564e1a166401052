package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
)

type MachineController struct {
	machineStor stor.MachineStor
}

func NewMachineController(machineStor stor.MachineStor) *MachineController {
	return &MachineController{machineStor: machineStor}
}

func (c *MachineController) ListMachines(ctx echo.Context) error {
	machines, err := c.machineStor.ListMachines()
	if err != nil {
		return err
	}

	if machines == nil {
		machines = []model.Machine{}
	}

	return ctx.JSON(http.StatusOK, machines)
}

func (c *MachineController) GetMachine(ctx echo.Context) error {
	machineID, err := intParam(ctx, "id")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid machine id")
	}

	machine, err := c.machineStor.GetMachineByID(machineID)
	if err != nil {
		return lookupErrorResponse(ctx, err, "Machine not found")
	}

	return ctx.JSON(http.StatusOK, machine)
}
