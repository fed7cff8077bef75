// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"time"

	"github.com/geowars/arena/internal/config"
	"github.com/geowars/arena/internal/core/ecs"
	"github.com/geowars/arena/internal/core/event"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

type Cue int

const (
	CueEnemyDestroyed Cue = iota
	CueSmallEnemyDestroyed
	CuePlayerHit
	CueSpecialFired
	CueSpecialReady
)

func (c Cue) String() string {
	switch c {
	case CueEnemyDestroyed:
		return "enemy_destroyed"
	case CueSmallEnemyDestroyed:
		return "small_enemy_destroyed"
	case CuePlayerHit:
		return "player_hit"
	case CueSpecialFired:
		return "special_fired"
	case CueSpecialReady:
		return "special_ready"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[Cue]tone{
	CueEnemyDestroyed:      {freq: 330, dur: 120 * time.Millisecond},
	CueSmallEnemyDestroyed: {freq: 660, dur: 60 * time.Millisecond},
	CuePlayerHit:           {freq: 110, dur: 300 * time.Millisecond},
	CueSpecialFired:        {freq: 880, dur: 200 * time.Millisecond},
	CueSpecialReady:        {freq: 1320, dur: 80 * time.Millisecond},
}

// Player mixes cues into the speaker. A Player built with the speaker
// disabled still mixes, which keeps it usable from tests.
type Player struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	live   bool
	log    *zap.Logger
}

// New initializes the speaker when cfg.Enabled is set.
func New(cfg config.AudioConfig, log *zap.Logger) (*Player, error) {
	p := newPlayer(beep.SampleRate(cfg.SampleRate), cfg.Volume, log)
	if !cfg.Enabled {
		return p, nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return p, nil
}

func newPlayer(rate beep.SampleRate, volume float64, log *zap.Logger) *Player {
	return &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Subscribe maps game events to cues.
func (p *Player) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, func(e event.EnemyDestroyed) {
		if e.Tag == ecs.TagSmallEnemy {
			p.Play(CueSmallEnemyDestroyed)
			return
		}
		p.Play(CueEnemyDestroyed)
	})
	event.Subscribe(bus, func(event.PlayerHit) { p.Play(CuePlayerHit) })
	event.Subscribe(bus, func(event.SpecialWeaponFired) { p.Play(CueSpecialFired) })
	event.Subscribe(bus, func(event.SpecialWeaponReady) { p.Play(CueSpecialReady) })
}

// Stream builds the finite streamer for c.
func (p *Player) Stream(c Cue) (beep.Streamer, error) {
	tn, ok := tones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %s", c)
	}
	sine, err := generators.SineTone(p.rate, tn.freq)
	if err != nil {
		return nil, fmt.Errorf("cue %s: %w", c, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(tn.dur), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}

// Play queues c on the mixer. Failures are logged, never returned.
func (p *Player) Play(c Cue) {
	s, err := p.Stream(c)
	if err != nil {
		p.log.Warn("cue skipped", zap.Stringer("cue", c), zap.Error(err))
		return
	}
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(s)
}

// Pending is the number of cues still sounding.
func (p *Player) Pending() int {
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

func (p *Player) Close() {
	if p.live {
		speaker.Close()
		p.live = false
	}
}
