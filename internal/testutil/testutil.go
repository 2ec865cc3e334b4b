// Package testutil holds helpers shared by golden-file tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pointage/internal/osutil"
)

const fixtureDir = "testdata"

// AssertGolden compares got with testdata/<name>.golden. Run the tests with
// -update to rewrite the file.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in golden files
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(t, goldie.WithFixtureDir(fixtureDir))
	g.Assert(t, name, got)
}

// Fixture copies testdata/<name>.golden to a file called dst inside a fresh
// temporary directory and returns its path.
func Fixture(t *testing.T, name, dst string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(fixtureDir, name+".golden"))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}

	path := filepath.Join(t.TempDir(), dst)

	if err := os.WriteFile(path, b, osutil.FilePermission); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
