package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTaskFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.csv")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTaskSet_ParsesEachLine(t *testing.T) {
	path := writeTaskFile(t, "0,1,4,4\n0,2,5,5\n")

	ts, err := loadTaskSet(path)

	assert.NoError(t, err)
	assert.Len(t, ts.Tasks, 2)
	assert.Equal(t, "Task_0", ts.Tasks[0].Name)
	assert.Equal(t, int64(1), ts.Tasks[0].Computation)
	assert.Equal(t, "Task_1", ts.Tasks[1].Name)
}

func TestLoadTaskSet_SkipsBlankLines(t *testing.T) {
	path := writeTaskFile(t, "0,1,4,4\n\n0,2,5,5\n")

	ts, err := loadTaskSet(path)

	assert.NoError(t, err)
	assert.Len(t, ts.Tasks, 2)
}

func TestLoadTaskSet_MissingFile_Errors(t *testing.T) {
	_, err := loadTaskSet(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadTaskSet_WrongFieldCount_Errors(t *testing.T) {
	path := writeTaskFile(t, "0,1,4\n")
	_, err := loadTaskSet(path)
	assert.Error(t, err)
}

func TestLoadTaskSet_NonIntegerField_Errors(t *testing.T) {
	path := writeTaskFile(t, "0,a,4,4\n")
	_, err := loadTaskSet(path)
	assert.Error(t, err)
}

func TestLoadTaskSet_EmptyFile_Errors(t *testing.T) {
	path := writeTaskFile(t, "")
	_, err := loadTaskSet(path)
	assert.Error(t, err)
}
