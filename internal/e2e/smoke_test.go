package e2e

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batch = `Name: Varian
Class: Warrior
Position: Tank

Name: anduin
Class: Paladin
Position: Heal

Name: Jaina
Class: Mage
Position: Ranged_Dps
`

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runRoster(t, binaryPath, home, strings.NewReader(batch), "ingest", "-")
	require.Error(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Accepted 2 records.")
	assert.Contains(t, stdout, "line 5: Name must start with a capital letter.")

	_, stderr, err = runRoster(t, binaryPath, home, nil,
		"add", "--name", "Anduin", "--class", "Paladin", "--position", "Heal",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runRoster(t, binaryPath, home, nil, "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "characters: 3")
	assert.Contains(t, stdout, "Jaina")

	out := filepath.Join(t.TempDir(), "characters.xlsx")
	_, stderr, err = runRoster(t, binaryPath, home, nil, "export", "--out", out)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, out)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "roster-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/roster")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build roster binary: %s", string(output))
	return binaryPath
}

func runRoster(t *testing.T, binaryPath, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "USER=e2e", "ROSTER_STORAGE_BACKEND=", "ROSTER_STORAGE_PATH=")
	cmd.Stdin = stdin

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
