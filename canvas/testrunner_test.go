package canvas

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "type", "text": "hello"},
			{"action": "key", "key": "Enter"},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	require.NoError(t, err)
	require.Len(t, runner.steps, 5)
	assert.Equal(t, "initial", runner.steps[0].Label)
	assert.Equal(t, 100.0, runner.steps[1].X)
	assert.Equal(t, "hello", runner.steps[2].Text)
	assert.Equal(t, 3, runner.steps[4].Frames)
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"unknown action", `{"steps": [{"action": "fly"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "f13"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTestScriptEmpty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestRunnerRenamesNode(t *testing.T) {
	c := newTestCanvas(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 60, "y": 100},
		{"action": "key", "key": "backspace"},
		{"action": "type", "text": "renamed"},
		{"action": "key", "key": "enter"}
	]}`))
	require.NoError(t, err)
	c.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		frame(c)
	}
	require.True(t, runner.Done())
	assert.Equal(t, "renamed", itemAt(t, c, sapling.NodePath{0}))
}

func TestRunnerDragAndWait(t *testing.T) {
	c := newTestCanvas(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 60, "fromY": 100, "toX": 180, "toY": 100, "frames": 4},
		{"action": "wait", "frames": 3}
	]}`))
	require.NoError(t, err)
	c.SetTestRunner(runner)

	frames := 0
	for ; frames < 30 && !runner.Done(); frames++ {
		frame(c)
	}
	require.True(t, runner.Done())
	// One frame issues the drag, four drain it, three wait, one finishes.
	assert.GreaterOrEqual(t, frames, 8)
	assert.Equal(t, "B", itemAt(t, c, sapling.NodePath{0}))
}

func TestRunnerQueuesScreenshot(t *testing.T) {
	c := newTestCanvas(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	require.NoError(t, err)
	c.SetTestRunner(runner)

	frame(c)
	assert.Equal(t, []string{"start"}, c.screenshotQueue)
	assert.True(t, runner.Done())
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drop", "after-drop"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestUnpremultiplyAndWritePNG(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-alpha orange
		10, 20, 30, 255,
	}
	img := unpremultiply(pixels, 2, 1)
	assert.Equal(t, uint8(255), img.Pix[0])
	assert.Equal(t, uint8(127), img.Pix[1])
	assert.Equal(t, uint8(128), img.Pix[3])
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pix[4:8])

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, writePNG(path, img))
	assert.FileExists(t, path)
}
