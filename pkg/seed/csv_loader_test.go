package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const machinesCSV = `name,model,manufacturer,max_rpm,max_feed_rate,spindle_power,max_tool_diameter,min_tool_diameter
Haas VF-2,VF-2,Haas,8100,16500,22.4,25,1
Tormach 1100MX,1100MX,Tormach,10000,8890,1.5,20,0.5
`

const toolsCSV = `id,name,type,material,diameter,flute_count,overall_length,cutting_length,shank_diameter,max_doc,max_rpm,manufacturer
7,EM 10mm,end_mill,carbide,10,4.0,75,22,10,10,12000,Harvey
8,Ball 6mm,ball_end_mill,carbide,6,,50,12,6,,9000,Harvey
9,Drill 8mm,drill,HSS,8,2,,,,,,Guhring
`

func TestLoadMachines(t *testing.T) {
	machines, err := LoadMachines(strings.NewReader(machinesCSV))
	require.NoError(t, err)
	require.Len(t, machines, 2)

	assert.Equal(t, "Haas VF-2", machines[0].Name)
	assert.Equal(t, 8100, machines[0].MaxRPM)
	assert.Equal(t, 16500.0, machines[0].MaxFeedRate)
	assert.Equal(t, 25.0, machines[0].MaxToolDiameter)
	assert.Equal(t, 0.5, machines[1].MinToolDiameter)
}

func TestLoadToolsTreatsBlanksAsMissing(t *testing.T) {
	tools, err := LoadTools(strings.NewReader(toolsCSV))
	require.NoError(t, err)
	require.Len(t, tools, 3)

	assert.Equal(t, 0, tools[0].ID)
	assert.Equal(t, 4, *tools[0].FluteCount)
	assert.Equal(t, 12000, *tools[0].MaxRPM)
	assert.Equal(t, 10.0, *tools[0].MaxDepthOfCut)

	assert.Nil(t, tools[1].FluteCount)
	assert.Nil(t, tools[1].MaxDepthOfCut)

	assert.Equal(t, "drill", tools[2].Type)
	assert.Nil(t, tools[2].MaxRPM)
	assert.Nil(t, tools[2].OverallLength)
}

func TestLoadToolsRejectsBadNumbers(t *testing.T) {
	_, err := LoadTools(strings.NewReader("name,type,diameter\nEM,end_mill,ten\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = LoadTools(strings.NewReader("name,type,diameter\n,end_mill,10\n"))
	assert.Error(t, err)
}

func TestLoadToolsRejectsFractionalCounts(t *testing.T) {
	for _, value := range []string{"4.7", "NaN", "Inf", "1e40"} {
		t.Run(value, func(t *testing.T) {
			_, err := LoadTools(strings.NewReader("name,type,diameter,flute_count\nEM,end_mill,10," + value + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "flute_count")
		})
	}

	tools, err := LoadTools(strings.NewReader("name,type,diameter,max_rpm\nEM,end_mill,10,12000.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 12000, *tools[0].MaxRPM)
}

func writeSeedDir(t *testing.T, machines, tools string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MachinesCSV), []byte(machines), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ToolsCSV), []byte(tools), 0644))
	return dir
}

func TestFromDir(t *testing.T) {
	stors := stor.NewInMemoryStors()

	machineCount, toolCount, err := FromDir(writeSeedDir(t, machinesCSV, toolsCSV), stors.ReferenceStor)
	require.NoError(t, err)
	assert.Equal(t, 2, machineCount)
	assert.Equal(t, 3, toolCount)

	tools, err := stors.ToolStor.ListTools()
	require.NoError(t, err)
	assert.Equal(t, "EM 10mm", tools[0].Name)
	assert.Equal(t, "Drill 8mm", tools[2].Name)
}

func TestFromDirTwiceReplacesRows(t *testing.T) {
	stors := stor.NewInMemoryStors()

	_, _, err := FromDir(writeSeedDir(t, machinesCSV, toolsCSV), stors.ReferenceStor)
	require.NoError(t, err)

	updatedTools := `name,type,diameter,flute_count,max_rpm
EM 12mm,end_mill,12,3,9000
`
	machineCount, toolCount, err := FromDir(writeSeedDir(t, machinesCSV, updatedTools), stors.ReferenceStor)
	require.NoError(t, err)
	assert.Equal(t, 2, machineCount)
	assert.Equal(t, 1, toolCount)

	machines, err := stors.MachineStor.ListMachines()
	require.NoError(t, err)
	assert.Len(t, machines, 2)

	tools, err := stors.ToolStor.ListTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "EM 12mm", tools[0].Name)
}

func TestFromDirLeavesTablesOnBadFile(t *testing.T) {
	stors := stor.NewInMemoryStors()
	_, _, err := FromDir(writeSeedDir(t, machinesCSV, toolsCSV), stors.ReferenceStor)
	require.NoError(t, err)

	_, _, err = FromDir(writeSeedDir(t, machinesCSV, "name,type,diameter\nEM,end_mill,ten\n"), stors.ReferenceStor)
	require.Error(t, err)

	tools, err := stors.ToolStor.ListTools()
	require.NoError(t, err)
	assert.Len(t, tools, 3)
}

func TestFromDirMissingFile(t *testing.T) {
	_, _, err := FromDir(t.TempDir(), stor.NewInMemoryStors().ReferenceStor)
	assert.Error(t, err)
}
