package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardIndicator(t *testing.T) {
	var k KeyboardIndicator
	assert.Empty(t, k.View())

	cmd, ok := k.Update(KeyboardActivityMsg{})
	assert.True(t, ok)
	assert.NotNil(t, cmd)
	assert.True(t, k.Active())

	// A second key restarts the countdown, so the first tick is stale.
	k.Update(KeyboardActivityMsg{})
	k.Update(keyboardIdleMsg{seq: 1})
	assert.True(t, k.Active())

	k.Update(keyboardIdleMsg{seq: 2})
	assert.False(t, k.Active())

	_, ok = k.Update(ClearActiveCmdMsg{})
	assert.False(t, ok)
}

func TestRenderFooterBar(t *testing.T) {
	bar := RenderFooterBar([]ShortcutEntry{
		{Key: "f", Label: "f filter"},
		{Key: "", Label: "q quit"},
	}, "f")
	assert.Contains(t, bar, "[ f filter ]")
	assert.Contains(t, bar, " • q quit")
	assert.False(t, strings.Contains(bar, "â€"))
}

func TestPadOrTruncate(t *testing.T) {
	assert.Equal(t, "Hell…", padOrTruncate("Hello World", 5))
	assert.Equal(t, "ab  ", padOrTruncate("ab", 4))
	assert.Equal(t, "", padOrTruncate("ab", 0))
}

func TestComputeColumnWidths(t *testing.T) {
	narrow := computeColumnWidths(20)
	assert.Equal(t, minTitleWidth, narrow.title)

	wide := computeColumnWidths(160)
	assert.LessOrEqual(t, wide.title, maxTitleWidth)
	assert.GreaterOrEqual(t, wide.tags, minTagWidth)
	total := 3 + 5*columnGap + ratingWidth + wide.title + wide.author + wide.genre + wide.status + wide.tags
	assert.LessOrEqual(t, total, 160)
}
