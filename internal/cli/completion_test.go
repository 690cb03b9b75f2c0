package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionGeneration(t *testing.T) {
	tests := []struct {
		name string
		gen  func(*bytes.Buffer) error
		want []string
	}{
		{
			name: "bash",
			gen:  func(b *bytes.Buffer) error { return rootCmd.GenBashCompletion(b) },
			want: []string{"# bash completion for bwmon", "__start_bwmon", "complete -o default -F __start_bwmon bwmon"},
		},
		{
			name: "zsh",
			gen:  func(b *bytes.Buffer) error { return rootCmd.GenZshCompletion(b) },
			want: []string{"#compdef bwmon", "_bwmon()"},
		},
		{
			name: "fish",
			gen:  func(b *bytes.Buffer) error { return rootCmd.GenFishCompletion(b, true) },
			want: []string{"fish completion for bwmon", "complete -c bwmon"},
		},
		{
			name: "powershell",
			gen:  func(b *bytes.Buffer) error { return rootCmd.GenPowerShellCompletion(b) },
			want: []string{"Register-ArgumentCompleter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.gen(&buf))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCompletionIncludesSubcommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "_bwmon_root_command")
	assert.Contains(t, output, "_bwmon_interfaces()")
	assert.Contains(t, output, "_bwmon_config_init()")
	assert.Contains(t, output, "_bwmon_version()")
	assert.Equal(t, strings.Count(output, "{"), strings.Count(output, "}"), "braces should be balanced")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}
