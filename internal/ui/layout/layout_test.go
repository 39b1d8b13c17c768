package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Fechar"}}, 60)
	assert.Contains(t, out, "Enter")
	assert.Contains(t, out, "Fechar")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Diagrama", 60)
	footer := RenderFooter(nil, 60)
	frame := RenderFrame(header, "corpo", footer, 60, 20)

	assert.Equal(t, 20, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "corpo"))
	assert.Contains(t, header, "Diagrama")
}
