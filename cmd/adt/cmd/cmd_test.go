package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so commands can run repeatedly.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	configPath := writeConfig(t, "log_level: error\n")
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "numeric small-int",
			stdin: "3\n4\n5\n7\n8\n10\n",
			args:  []string{"render", "--numeric", "--layout", "small-int"},
			want:  "3, 4, 5, 7, 8\n10\n",
		},
		{
			name:  "numeric defaults to small-int",
			stdin: "10\n3\n\n7\n",
			args:  []string{"render", "-n", "-s"},
			want:  "3, 7, 10\n",
		},
		{
			name:  "numeric reversed",
			stdin: "1\n2\n3\n",
			args:  []string{"render", "-n", "-r"},
			want:  "3, 2, 1\n",
		},
		{
			name:  "sorted strings numbered",
			stdin: "pear\napple\nfig\n",
			args:  []string{"render", "--sort"},
			want:  "0\tapple\n1\tfig\n2\tpear\n",
		},
		{
			name:  "crlf input",
			stdin: "b\r\na\r\n",
			args:  []string{"render", "-s"},
			want:  "0\ta\n1\tb\n",
		},
		{
			name:  "empty input",
			stdin: "",
			args:  []string{"render"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := execute(t, "a\n", "render", "--layout", "nope")
	assert.ErrorContains(t, err, `unknown layout "nope"`)

	_, err = execute(t, "12\nabc\n", "render", "--numeric")
	assert.ErrorContains(t, err, "line 2")
}

func TestStats(t *testing.T) {
	out, err := execute(t, "apple\nfig\nbanana\n", "stats")
	require.NoError(t, err)

	assert.Equal(t, "Lines: 3\n"+
		"Array capacity: 50\n"+
		"Array utilization: 6.0%\n"+
		"Total bytes: 14\n"+
		"Longest line: [cap=16 len=6] banana\n", out)
}

func TestLayouts(t *testing.T) {
	out, err := execute(t, "", "layouts")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `0	long-int   columns=4 width=18 separator="," wrap=true numbered=false`, lines[0])
	assert.Equal(t, `1	small-int  columns=5 width=0 separator=", " wrap=false numbered=false`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2\tstring "))
	assert.True(t, strings.HasPrefix(lines[3], "3\twide-int "))
}

func TestConfigCommands(t *testing.T) {
	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Log Level: error")
	assert.Contains(t, out, "Default Layout: string")

	out, err = execute(t, "", "config", "example")
	require.NoError(t, err)
	assert.Contains(t, out, "csv:")

	path := filepath.Join(t.TempDir(), "new.yaml")
	out, err = execute(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")
}

func TestExplicitMissingConfig(t *testing.T) {
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "layouts"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "config file not found")
}
