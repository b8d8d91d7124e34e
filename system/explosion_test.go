package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chainburst/vmath"
)

func TestExplosionTriangularGrowth(t *testing.T) {
	env := newTestEnv(t)
	e := SpawnExplosion(env.world, vmath.V2(100, 100), 0)

	exp, ok := env.world.Component.Explosion.Get(e)
	require.True(t, ok)
	assert.Zero(t, exp.Radius, "radius must be 0 at spawn")

	// 1.2s lifetime in 100ms frames: peak after 6, expiry after 12
	expected := []float32{
		1.0 / 6, 2.0 / 6, 3.0 / 6, 4.0 / 6, 5.0 / 6, 1,
		5.0 / 6, 4.0 / 6, 3.0 / 6, 2.0 / 6, 1.0 / 6,
	}
	for i, want := range expected {
		env.step(100 * time.Millisecond)

		exp, ok := env.world.Component.Explosion.Get(e)
		require.True(t, ok, "explosion despawned early at frame %d", i+1)
		assert.InDelta(t, want, exp.Radius, 1e-4, "frame %d", i+1)

		tr, ok := env.world.Component.Transform.Get(e)
		require.True(t, ok)
		assert.Equal(t, exp.Radius, tr.Scale, "transform scale follows progress")
	}

	env.step(100 * time.Millisecond)
	assert.False(t, env.world.Alive(e), "explosion must despawn when remaining reaches zero")
	assert.False(t, env.world.Component.Transform.Has(e))
	assert.EqualValues(t, 1, env.world.Resource.Status.Ints.Get("explosion.expired").Load())
}

func TestExplosionSaturatesOnLongFrame(t *testing.T) {
	env := newTestEnv(t)
	e := SpawnExplosion(env.world, vmath.V2(0, 0), 0)

	env.step(5 * time.Second)
	assert.False(t, env.world.Alive(e))
}

func TestExplosionFrozenWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	e := SpawnExplosion(env.world, vmath.V2(10, 10), 0)

	env.step(300 * time.Millisecond)
	before, _ := env.world.Component.Explosion.Get(e)

	env.world.Resource.Clock.Pause()
	for i := 0; i < 10; i++ {
		env.step(time.Second)
	}

	after, ok := env.world.Component.Explosion.Get(e)
	require.True(t, ok, "explosion expired while paused")
	assert.Equal(t, before.Remaining, after.Remaining)
	assert.Equal(t, before.Radius, after.Radius)

	env.world.Resource.Clock.Resume()
	env.step(300 * time.Millisecond)
	resumed, _ := env.world.Component.Explosion.Get(e)
	assert.Equal(t, before.Remaining-300*time.Millisecond, resumed.Remaining)
	assert.InDelta(t, 1, resumed.Radius, 1e-4)
}
