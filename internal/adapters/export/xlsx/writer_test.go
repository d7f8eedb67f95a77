package xlsx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/bnema/roster-cli/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReport() application.ExportReport {
	return application.ExportReport{
		Owner: "testuser",
		Rows: []application.ExportRow{
			{ID: 4, Name: "Varian", Class: domain.ClassWarrior, Role: domain.RoleTank},
			{ID: 7, Name: "Anduin", Class: domain.ClassPaladin, Role: domain.RoleHeal},
		},
	}
}

func readRows(t *testing.T, f *excelize.File) [][]string {
	t.Helper()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestWriteProducesSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	want := [][]string{
		{"ID", "Name", "Class", "Position"},
		{"4", "Varian", "Warrior", "Tank"},
		{"7", "Anduin", "Paladin", "Heal"},
	}
	if diff := cmp.Diff(want, readRows(t, f)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileReplacesTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	require.NoError(t, WriteFile(path, testReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.Len(t, readRows(t, f), 3)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultFileName)

	err := WriteFile(path, testReport())
	require.ErrorContains(t, err, "create temp export file")
}
