package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Muted", MutedStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render("test text"), "test text")
		})
	}
}

func TestPrintWarning(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	PrintWarning("counter went backwards")

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	assert.Contains(t, output, "counter went backwards")
	assert.Contains(t, output, SymbolWarning)
}

func TestDisableColors(t *testing.T) {
	DisableColors()

	assert.Equal(t, "ok", SuccessStyle().Render("ok"))
}
