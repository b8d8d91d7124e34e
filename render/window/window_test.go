package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/chainburst/engine"
	"github.com/lixenwraith/chainburst/render"
)

func TestLayoutFollowsCapturedScene(t *testing.T) {
	w := engine.NewWorld(nil, nil)
	g := NewGame(w, engine.NewScheduler(w))

	width, height := g.Layout(0, 0)
	assert.Equal(t, 480, width)
	assert.Equal(t, 320, height)

	// A config swap is only seen once the next frame captures it
	w.RunSafe(func() {
		w.Resource.Config.Width = 640
	})
	width, _ = g.Layout(0, 0)
	assert.Equal(t, 480, width)

	g.scene = render.Capture(w)
	width, height = g.Layout(1920, 1080)
	assert.Equal(t, 640, width)
	assert.Equal(t, 320, height)
}
