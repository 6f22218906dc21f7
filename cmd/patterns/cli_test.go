package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/internal/catalog"
)

// execute runs the CLI in-process with a config file built from toml.
func execute(t *testing.T, toml string, args ...string) (string, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "patterns.toml")
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", path}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

//
// -----------------------------------------------------------------------------
// list / show
// -----------------------------------------------------------------------------

// TestList_AllCategories verifies every category heading and pattern is listed.
func TestList_AllCategories(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "list")
	require.NoError(t, err)

	for _, heading := range []string{"BEHAVIORAL", "CREATIONAL", "STRUCTURAL"} {
		assert.Contains(t, out, heading)
	}
	for _, name := range []string{"chain", "visitor", "singleton", "factorymethod", "proxy"} {
		assert.Contains(t, out, name)
	}
	assert.Less(t, strings.Index(out, "BEHAVIORAL"), strings.Index(out, "STRUCTURAL"))
}

func TestList_Category(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "list", "--category", "Structural")
	require.NoError(t, err)
	assert.Contains(t, out, "adapter")
	assert.NotContains(t, out, "observer")

	_, _, err = execute(t, "", "list", "-c", "functional")
	var unknown *catalog.UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
}

func TestShow(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "show", "Observer")
	require.NoError(t, err)
	assert.Equal(t,
		"Name:     observer\nCategory: behavioral\nSummary:  Notifies registered traders whenever the stock price changes.\n",
		out)

	_, _, err = execute(t, "", "show", "monad")
	var unknown *catalog.UnknownPatternError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "monad", unknown.Name)
}

// TestRegistry_Complete verifies all 21 patterns are registered in the right categories.
func TestRegistry_Complete(t *testing.T) {
	t.Parallel()

	r := buildRegistry(&app{})
	assert.Equal(t, 21, r.Len())
	assert.Len(t, r.List(catalog.Behavioral), 9)
	assert.Len(t, r.List(catalog.Creational), 6)
	assert.Len(t, r.List(catalog.Structural), 6)
}

//
// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

// TestRun_NamesInOrder verifies demos print under headers in the order requested.
func TestRun_NamesInOrder(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "parallelism = 2", "run", "composite", "adapter", "proxy")
	require.NoError(t, err)
	assert.Equal(t, `== composite ==
-root
---file1
---usr
-----file2
-----file3
== adapter ==
5
== proxy ==
A request is made from the proxy.
Operation
`, out)
}

func TestRun_NothingSelected(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "run")
	require.ErrorIs(t, err, errNothingToRun)
}

func TestRun_UnknownPattern(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "run", "adapter", "nope")
	var unknown *catalog.UnknownPatternError
	require.ErrorAs(t, err, &unknown)
}

// TestRun_CategoryWithNames verifies explicit names come first and are not repeated.
func TestRun_CategoryWithNames(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "run", "proxy", "--category", "structural", "--parallel", "3")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "== proxy =="))
	assert.True(t, strings.HasPrefix(out, "== proxy ==\n"))
	for _, name := range []string{"adapter", "bridge", "composite", "decorator", "facade"} {
		assert.Contains(t, out, "== "+name+" ==")
	}
	assert.NotContains(t, out, "== observer ==")
}

// TestRun_All verifies every demo succeeds with the default configuration.
func TestRun_All(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "run", "--all")
	require.NoError(t, err)
	assert.Equal(t, 21, strings.Count(out, "== "))
	assert.Contains(t, out, "== factorymethod ==\nFile: Hello World!\n")
	assert.Contains(t, out, "== factory ==\nJson: Log message\n")
}

func TestRun_Metrics(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "run", "adapter", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `patterns_demo_runs_total{pattern="adapter",result="ok"} 1`)
}

// TestRun_ConfiguredFactories verifies config drives the factory demos.
func TestRun_ConfiguredFactories(t *testing.T) {
	t.Parallel()

	seeds := filepath.Join(t.TempDir(), "resumes.yaml")
	require.NoError(t, os.WriteFile(seeds, []byte(`
resumes:
  JohnDoe:
    candidate_name: John Doe
    skills: Go, SQL
    work_experience: 7 years
  JaneDoe:
    candidate_name: Jane Doe
    skills: Rust
    work_experience: 2 years
`), 0o600))

	cfg := "log_file_type = \"xml\"\nresume_seed_file = " + strings.ReplaceAll(`"`+seeds+`"`, `\`, `\\`)
	out, _, err := execute(t, cfg, "run", "factory", "prototype")
	require.NoError(t, err)
	assert.Equal(t, "== factory ==\nXml: Log message\n== prototype ==\nGo, SQL\n2 years\n", out)
}

func TestRun_DemoFailure(t *testing.T) {
	t.Parallel()

	cfg := `resume_seed_file = "` + filepath.ToSlash(filepath.Join(t.TempDir(), "missing.yaml")) + `"`
	out, stderr, err := execute(t, cfg, "run", "prototype", "adapter")

	var runErr *catalog.RunError
	require.ErrorAs(t, err, &runErr)
	assert.Error(t, runErr.Err("prototype"))
	assert.NoError(t, runErr.Err("adapter"))
	assert.Contains(t, out, "== adapter ==\n5\n")
	assert.Contains(t, stderr, "demo failed")
}

// TestRun_DatabaseLogger verifies the factory method persists to SQLite when configured.
func TestRun_DatabaseLogger(t *testing.T) {
	t.Parallel()

	conn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	_ = conn.Close()

	dsn := filepath.ToSlash(filepath.Join(t.TempDir(), "logs.db"))
	out, _, err := execute(t, "logger_type = \"database\"\ndatabase_dsn = \""+dsn+"\"", "run", "factorymethod")
	require.NoError(t, err)
	assert.Equal(t, "== factorymethod ==\nDatabase: Hello World!\n", out)

	db, err := sqlx.Connect("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM log_entries"))
	assert.Equal(t, 1, n)
}

func TestRun_BadConfig(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "parallelism = 0", "run", "adapter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism")
}
