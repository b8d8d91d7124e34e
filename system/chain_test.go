package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chainburst/component"
	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/event"
	"github.com/lixenwraith/chainburst/vmath"
)

// setRadius forces an explosion's progress without running the growth system
func setRadius(env *testEnv, e core.Entity, radius float32) {
	exp, _ := env.world.Component.Explosion.Get(e)
	exp.Radius = radius
	env.world.Component.Explosion.Set(e, exp)
}

func TestChainReactionScenario(t *testing.T) {
	env := newTestEnv(t)
	w := env.world
	point := vmath.V2(200, 150)

	SpawnExplosion(w, point, 0)
	bomb := SpawnBomb(w, point, true)

	env.step(0)

	assert.False(t, w.Alive(bomb), "damaged bomb must be despawned")
	require.Equal(t, 2, w.Component.Explosion.Count())

	var follow component.ExplosionComponent
	var followPos vmath.Vec2
	for _, e := range w.Component.Explosion.All() {
		exp, _ := w.Component.Explosion.Get(e)
		if exp.Chain == 1 {
			follow = exp
			tr, _ := w.Component.Transform.Get(e)
			followPos = tr.Translation
		}
	}
	assert.EqualValues(t, 1, follow.Chain, "follow-on explosion has depth d+1")
	assert.Equal(t, point, followPos, "follow-on explosion spawns at the bomb position")
	assert.EqualValues(t, 1, w.Resource.Chain.Max)
	assert.Equal(t, "1 Chain(s)", w.Resource.Chain.Display())

	// Detonation audio is routed on the next frame's dispatch
	env.step(0)
	sounds := env.audio.byType(core.SoundDetonation)
	require.Len(t, sounds, 1)
	assert.EqualValues(t, 1, sounds[0].Chain)
}

func TestFollowOnAgesInSpawnFrame(t *testing.T) {
	env := newTestEnv(t)
	w := env.world
	point := vmath.V2(120, 80)

	SpawnExplosion(w, point, 0)
	SpawnBomb(w, point, true)

	env.step(100 * time.Millisecond)

	var follow component.ExplosionComponent
	found := false
	for _, e := range w.Component.Explosion.All() {
		exp, _ := w.Component.Explosion.Get(e)
		if exp.Chain == 1 {
			follow, found = exp, true
		}
	}
	require.True(t, found, "bomb must detonate into a depth 1 explosion")
	assert.Equal(t, 1100*time.Millisecond, follow.Remaining)
	assert.InDelta(t, 1.0/6, follow.Radius, 1e-4)
}

func TestChainDepthIncrements(t *testing.T) {
	env := newTestEnv(t)
	w := env.world

	e := SpawnExplosion(w, vmath.V2(50, 50), 0)
	exp, _ := w.Component.Explosion.Get(e)
	exp.Chain = 6
	w.Component.Explosion.Set(e, exp)
	SpawnBomb(w, vmath.V2(50, 50), true)

	env.step(0)

	chains := map[uint32]int{}
	for _, ent := range w.Component.Explosion.All() {
		exp, _ := w.Component.Explosion.Get(ent)
		chains[exp.Chain]++
	}
	assert.Equal(t, map[uint32]int{6: 1, 7: 1}, chains)
	assert.EqualValues(t, 7, w.Resource.Chain.Max)
}

func TestDudBreakableDoesNotExplode(t *testing.T) {
	env := newTestEnv(t)
	w := env.world

	SpawnExplosion(w, vmath.V2(10, 10), 0)
	dud := SpawnBomb(w, vmath.V2(10, 10), false)

	env.step(0)

	assert.False(t, w.Alive(dud))
	assert.Equal(t, 1, w.Component.Explosion.Count())
	assert.EqualValues(t, 0, w.Resource.Chain.Max)
	assert.EqualValues(t, 1, w.Resource.Status.Ints.Get("breakable.destroyed").Load())
	assert.EqualValues(t, 0, w.Resource.Status.Ints.Get("breakable.detonated").Load())
}

func TestChainDetectBoundaryIsNotCollision(t *testing.T) {
	env := newTestEnv(t)
	w := env.world
	detect := NewChainDetectSystem(w)

	e := SpawnExplosion(w, vmath.V2(0, 0), 0)
	setRadius(env, e, 1) // Effective radius 40

	touching := SpawnBomb(w, vmath.V2(44, 0), true) // 40 + 4 exactly
	inside := SpawnBomb(w, vmath.V2(43.5, 0), true)

	detect.Update()

	b, _ := w.Component.Breakable.Get(touching)
	assert.False(t, b.Incoming.Hit, "touching circles must not collide")

	b, _ = w.Component.Breakable.Get(inside)
	assert.True(t, b.Incoming.Hit)
	assert.EqualValues(t, 0, b.Incoming.Chain)
}

func TestChainDetectFirstMatchWins(t *testing.T) {
	env := newTestEnv(t)
	w := env.world
	detect := NewChainDetectSystem(w)

	first := SpawnExplosion(w, vmath.V2(100, 100), 2)
	second := SpawnExplosion(w, vmath.V2(102, 100), 5)
	setRadius(env, first, 1)
	setRadius(env, second, 1)

	bomb := SpawnBomb(w, vmath.V2(101, 100), true)
	detect.Update()

	b, _ := w.Component.Breakable.Get(bomb)
	require.True(t, b.Incoming.Hit)
	assert.EqualValues(t, 2, b.Incoming.Chain, "scan order decides, not depth or distance")
}

func TestChainDetectNoExplosions(t *testing.T) {
	env := newTestEnv(t)
	bomb := SpawnBomb(env.world, vmath.V2(1, 1), true)

	env.step(16 * time.Millisecond)

	assert.True(t, env.world.Alive(bomb))
	assert.EqualValues(t, 0, env.world.Resource.Chain.Max)
	assert.Equal(t, "", env.world.Resource.Chain.Display())
}

func TestChainDetectParallelMatchesSequential(t *testing.T) {
	env := newTestEnv(t)
	w := env.world
	detect := NewChainDetectSystem(w)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 12; i++ {
		e := SpawnExplosion(w, vmath.V2(rng.Float32()*480, rng.Float32()*320), uint32(i))
		setRadius(env, e, rng.Float32())
	}
	bombs := make([]core.Entity, 0, 500)
	for i := 0; i < 500; i++ {
		bombs = append(bombs, SpawnBomb(w, vmath.V2(rng.Float32()*480, rng.Float32()*320), true))
	}

	detect.Update()
	sequential := make(map[core.Entity]component.Damage, len(bombs))
	for _, e := range bombs {
		b, _ := w.Component.Breakable.Get(e)
		sequential[e] = b.Incoming
		b.Incoming = component.Damage{}
		w.Component.Breakable.Set(e, b)
	}

	w.Resource.Config.ParallelDetect = true
	w.Resource.Config.DetectWorkers = 4
	detect.parallelThreshold = 0
	detect.Update()

	hits := 0
	for _, e := range bombs {
		b, _ := w.Component.Breakable.Get(e)
		assert.Equal(t, sequential[e], b.Incoming, "entity %v", e)
		if b.Incoming.Hit {
			hits++
		}
	}
	assert.Positive(t, hits, "scenario should produce at least one hit")
}

func TestPendingDamageNeverSurvivesFrame(t *testing.T) {
	env := newTestEnv(t)
	w := env.world

	// Dense grid: bombs 20 apart chain across the whole field
	for y := float32(20); y < 320; y += 20 {
		for x := float32(20); x < 480; x += 20 {
			SpawnBomb(w, vmath.V2(x, y), true)
		}
	}
	w.PushEvent(event.EventSpawnExplosionRequest, &event.SpawnPayload{Point: vmath.V2(20, 20)})

	for frame := 0; frame < 600 && w.EntityCount() > 0; frame++ {
		env.step(16 * time.Millisecond)
		for _, e := range w.Component.Breakable.All() {
			b, _ := w.Component.Breakable.Get(e)
			require.False(t, b.Incoming.Hit, "stale pending damage on %v at frame %d", e, frame)
		}
	}

	assert.Zero(t, w.Component.Breakable.Count(), "chain should consume every bomb")
	assert.Zero(t, w.Component.Explosion.Count(), "all explosions expire")
	assert.Positive(t, w.Resource.Status.Ints.Get("chain.record").Load())
	assert.EqualValues(t, 0, w.Resource.Chain.Max, "aggregator returns 0 with no live explosions")
}
