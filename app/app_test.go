package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chainburst/config"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/vmath"
)

func TestRegisterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", "x.toml", "-parallel", "-mute", "-watch=false"}))

	assert.Equal(t, "x.toml", o.ConfigPath)
	assert.True(t, o.Parallel)
	assert.True(t, o.Mute)
	assert.False(t, o.Watch)
	assert.False(t, o.Debug)
}

func TestNewAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[explosion]\nradius = 30\n"), 0644))

	a, err := New(&Options{ConfigPath: path, Parallel: true, NoAudio: true})
	require.NoError(t, err)
	defer a.Close()

	res := a.World.Resource.Config
	assert.Equal(t, float32(30), res.ExplosionRadius)
	assert.True(t, res.ParallelDetect)
	assert.Len(t, a.World.Systems(), 7)

	// A left click becomes an explosion on the next frame
	a.World.PushEvent(event.EventSpawnExplosionRequest, &event.SpawnPayload{Point: vmath.V2(50, 50)})
	a.Scheduler.Step()
	assert.Equal(t, 1, a.World.Component.Explosion.Count())

	require.NoError(t, a.Close())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bomb]\nradius = -2\n"), 0644))

	_, err := New(&Options{ConfigPath: path, NoAudio: true})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOptionsApply(t *testing.T) {
	cfg := config.Default()
	(&Options{Debug: true, Parallel: true, Mute: true}).Apply(cfg)

	assert.True(t, cfg.Log.Debug)
	assert.True(t, cfg.Simulation.Parallel)
	assert.False(t, cfg.Audio.Enabled)

	// Unset flags leave the file's values alone
	cfg = config.Default()
	cfg.Simulation.Parallel = true
	(&Options{}).Apply(cfg)
	assert.True(t, cfg.Simulation.Parallel)
}

func TestReloadKeepsFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	a, err := New(&Options{ConfigPath: path, Parallel: true, NoAudio: true, Watch: true})
	require.NoError(t, err)
	defer a.Close()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[explosion]\nradius = 25\n"), 0644))

	w := a.World
	assert.Eventually(t, func() bool {
		var r float32
		w.RunSafe(func() { r = w.Resource.Config.ExplosionRadius })
		return r == 25
	}, 2*time.Second, 20*time.Millisecond)

	var parallel bool
	w.RunSafe(func() { parallel = w.Resource.Config.ParallelDetect })
	assert.True(t, parallel)
}
