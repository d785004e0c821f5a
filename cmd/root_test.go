package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cbdump/pkg/dump"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs a fresh root command with args as they would appear on
// the command line.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(normalizeArgs(rootCmd, args))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	out, err := executeRoot(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "cbdump")
	assert.Contains(t, out, "--paths")
	assert.Contains(t, out, "--ftypes")
	assert.Contains(t, out, "--ignore-file-read-errors")
}

func TestNormalizeArgs(t *testing.T) {
	rootCmd := NewRootCommand()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "single-dash long flags",
			args: []string{"-o", "out.txt", "-paths", "src,lib", "-ftypes", ".go"},
			want: []string{"-o", "out.txt", "--paths", "src,lib", "--ftypes", ".go"},
		},
		{
			name: "single-dash long flags with values",
			args: []string{"-paths=src", "-ftypes=.go,.md", "-ignore-file-read-errors"},
			want: []string{"--paths=src", "--ftypes=.go,.md", "--ignore-file-read-errors"},
		},
		{
			name: "double-dash and shorthand untouched",
			args: []string{"--output", "x", "-o", "y", "--paths", "a", "--debug"},
			want: []string{"--output", "x", "-o", "y", "--paths", "a", "--debug"},
		},
		{
			name: "unknown single-dash words untouched",
			args: []string{"-xyz", "-"},
			want: []string{"-xyz", "-"},
		},
		{
			name: "arguments after terminator untouched",
			args: []string{"-paths", "a", "--", "-ftypes"},
			want: []string{"--paths", "a", "--", "-ftypes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(rootCmd, tt.args))
		})
	}
}

func TestRootCommandDumpsFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.py"), []byte("x=1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.txt"), []byte("skip"), 0644))
	output := filepath.Join(dir, "dump.txt")

	_, err := executeRoot(t, "-o", output, "-paths", " "+src+" ,", "-ftypes", ".py, ")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "FILE src/a.py\n\nx=1", string(data))
}

func TestRootCommandCaptionOptions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.py"), []byte("x=1"), 0644))
	output := filepath.Join(dir, "dump.txt")

	_, err := executeRoot(t, "--output", output, "--paths", src, "--ftypes", ".py",
		"--caption-prefix", "## ", "--full-path")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "## "+filepath.ToSlash(filepath.Join(src, "a.py"))+"\n\nx=1", string(data))
}

func TestRootCommandIgnoreReadErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.py"), []byte{0xff}, 0644))
	output := filepath.Join(dir, "dump.txt")

	_, err := executeRoot(t, "-o", output, "-paths", src, "-ftypes", ".py")
	var readErr *dump.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.NoFileExists(t, output)

	_, err = executeRoot(t, "-o", output, "-paths", src, "-ftypes", ".py", "--ignore-file-read-errors")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FILE src/bad.py\n\n"+dump.ReadErrorPlaceholder)
}

func TestRootCommandRequiresFlags(t *testing.T) {
	_, err := executeRoot(t, "-paths", "src", "-ftypes", ".go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestRootCommandRejectsEmptyLists(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "dump.txt")

	_, err := executeRoot(t, "-o", output, "-paths", " , ", "-ftypes", ".go")
	assert.ErrorIs(t, err, dump.ErrNoRoots)

	_, err = executeRoot(t, "-o", output, "-paths", dir, "-ftypes", ",")
	assert.ErrorIs(t, err, dump.ErrNoSuffixes)
	assert.NoFileExists(t, output)
}
