package system

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/chainburst/core"
	"github.com/lixenwraith/chainburst/engine"
)

type testEnv struct {
	world     *engine.World
	scheduler *engine.Scheduler
	time      *engine.SteppedTimeProvider
	audio     *recordingPlayer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tp := engine.NewSteppedTimeProvider(time.Unix(0, 0))
	w := engine.NewWorld(nil, engine.NewClock(tp))
	s := engine.NewScheduler(w)
	Register(s, w)

	audio := &recordingPlayer{}
	w.Resource.Audio.Player = audio

	return &testEnv{world: w, scheduler: s, time: tp, audio: audio}
}

// step advances real time by dt and runs one frame
func (env *testEnv) step(dt time.Duration) {
	env.time.Advance(dt)
	env.scheduler.Step()
}

// recordingPlayer is an engine.AudioPlayer that stores requests
type recordingPlayer struct {
	mu       sync.Mutex
	requests []core.SoundRequest
}

func (p *recordingPlayer) Play(req core.SoundRequest) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	return true
}

func (p *recordingPlayer) ToggleMute() bool { return false }
func (p *recordingPlayer) IsMuted() bool    { return false }
func (p *recordingPlayer) IsRunning() bool  { return true }

func (p *recordingPlayer) byType(st core.SoundType) []core.SoundRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []core.SoundRequest
	for _, r := range p.requests {
		if r.Type == st {
			out = append(out, r)
		}
	}
	return out
}
