package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "styletools-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "styletools")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/styletools")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(parts ...string) string {
	abs, _ := filepath.Abs(filepath.Join(append([]string{"../../testdata"}, parts...)...))
	return abs
}

func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// --- diff2cmds ---

func TestE2E_Diff2CmdsModifiedOnly(t *testing.T) {
	diff, err := os.ReadFile(fixturePath("diffs", "pa1.diff"))
	require.NoError(t, err)

	out, _, code := run(t, string(diff), "diff2cmds", "-m")
	assert.Equal(t, 0, code)
	assert.Equal(t,
		"clang-format -i pa1/PPTokenizerDFA.cpp --lines=10:14 --lines=41:43\n"+
			"clang-format -i pa1/PPTokenizerDFA.h --lines=5:7\n"+
			"yapf -i pa1/compare.py --lines=20-21\n",
		out)
}

func TestE2E_Diff2CmdsParseError(t *testing.T) {
	out, errOut, code := run(t, "--- a/f.cc\n+++ b/f.cc\n@@ -1,3 +a,b @@\n+x\n", "diff2cmds")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: parsing unified diff")
}

// --- tokcmp ---

func TestE2E_TokCmpSame(t *testing.T) {
	out, errOut, code := run(t, "", "tokcmp", fixturePath("tokens", "ref.txt"), fixturePath("tokens", "same.txt"))
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestE2E_TokCmpDiffers(t *testing.T) {
	out, errOut, code := run(t, "", "tokcmp", fixturePath("tokens", "ref.txt"), fixturePath("tokens", "changed.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "-pp-number 2 42\n+pp-number 2 43\n")
	assert.Empty(t, errOut, "differing streams are not reported as an error")
}

// --- compiledb ---

func TestE2E_CompileDBBazelMissing(t *testing.T) {
	_, errOut, code := run(t, "", "compiledb", "--bazel", filepath.Join(t.TempDir(), "bazel"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: querying build info")
}

// --- init ---

func TestE2E_InitThenPlan(t *testing.T) {
	dir := t.TempDir()
	_, _, code := run(t, "", "init", dir)
	require.Equal(t, 0, code)

	cfg := filepath.Join(dir, ".styletools.yaml")
	out, _, code := run(t, "--- a/x.py\n+++ b/x.py\n@@ -3 +3,2 @@\n a\n+b\n", "diff2cmds", "--config", cfg, "-m")
	assert.Equal(t, 0, code)
	assert.Equal(t, "yapf -i x.py --lines=3-4\n", out)
}

// --- version ---

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "styletools")
}
