package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gosta/classify"
	"github.com/stretchr/testify/require"
)

func TestSubstringClassifier_DedupesAndTrims(t *testing.T) {
	t.Parallel()

	c := classify.NewSubstringClassifier([]string{" ff ", "dfrtp", "ff", "", "  "})
	require.Equal(t, []string{"ff", "dfrtp"}, c.Patterns())
}

func TestSubstringClassifier_IsSequential(t *testing.T) {
	t.Parallel()

	c := classify.NewSubstringClassifier([]string{"ff", "dfrtp"})

	require.True(t, c.IsSequential("sky130_fd_sc_hd__dfrtp_1"))
	require.True(t, c.IsSequential("my_ff_cell"))
	require.False(t, c.IsSequential("sky130_fd_sc_hd__and2_1"))
}

func TestLoadFFNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ff_names.txt")
	require.NoError(t, os.WriteFile(path, []byte("ff\n dfrtp \n\nsdfrtp\n"), 0o644))

	lines, err := classify.LoadFFNames(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ff", " dfrtp ", "", "sdfrtp"}, lines)

	c := classify.NewSubstringClassifier(lines)
	require.Equal(t, []string{"ff", "dfrtp", "sdfrtp"}, c.Patterns())
}

func TestLoadYAMLOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "classify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sequential_patterns: [\"ff\", \"dfrtp\"]\n"), 0o644))

	c, err := classify.LoadYAMLOverride(path)
	require.NoError(t, err)
	require.True(t, c.IsSequential("my_dfrtp_cell"))
}
