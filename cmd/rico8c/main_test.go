package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPathReplacesExtension(t *testing.T) {
	require.Equal(t, "foo.lua", defaultOutputPath("foo.rico8"))
	require.Equal(t, "dir/bar.lua", defaultOutputPath("dir/bar.r8"))
	require.Equal(t, "noext.lua", defaultOutputPath("noext"))
}

func TestRunTranslatesFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.rico8")
	require.NoError(t, os.WriteFile(in, []byte(`
		fn main() {
			let x = 5;
			print(x);
		}
	`), 0644))

	outputPath = filepath.Join(dir, "main.lua")
	defer func() { outputPath = "" }()

	require.NoError(t, run(in))

	rendered, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(rendered), "function main()")
}
