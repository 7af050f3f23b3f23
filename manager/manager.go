// SPDX-License-Identifier: EPL-2.0

// Package manager splits an audio graph into a control side, which may
// allocate and block, and a Renderer for the audio callback, which may not.
//
// The two sides share nothing but single-producer single-consumer queues
// and the reservation state of each arena. The control side reserves a
// slot, builds the resource and sends it as a command; the renderer
// inserts it at the start of its next block. Finished resources travel
// back the same way and are released by FreeUnusedResources.
package manager

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ik5/audmix/arena"
	"github.com/ik5/audmix/mixer"
	"github.com/ik5/audmix/parameter"
	"github.com/ik5/audmix/ringbuf"
	"github.com/ik5/audmix/sound"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used by the control side. The renderer never
// logs.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// Manager is the control side. Its methods are safe for concurrent use.
type Manager struct {
	settings Settings
	logger   *slog.Logger

	// mu serializes producers on the command queue
	mu       sync.Mutex
	commands *ringbuf.Producer[command]

	players *arena.Controller
	tracks  *arena.Controller
	params  *arena.Controller

	// freeMu serializes consumers of the unused queues
	freeMu        sync.Mutex
	unusedPlayers *ringbuf.Consumer[*sound.Player]
	unusedTracks  *ringbuf.Consumer[*mixer.Track]
}

// New builds a Manager and the Renderer it feeds. Settings are expected to
// be valid; see Settings.Validate.
func New(settings Settings, opts ...Option) (*Manager, *Renderer) {
	c := settings.Capacities

	cmdProd, cmdCons := ringbuf.New[command](c.Commands)
	playerProd, playerCons := ringbuf.New[*sound.Player](c.Sounds)
	trackProd, trackCons := ringbuf.New[*mixer.Track](c.SubTracks)

	main := mixer.NewTrack(settings.MainTrack)
	main.Init(settings.SampleRate)

	players := arena.New[*sound.Player](c.Sounds)
	mix := mixer.New(main, c.SubTracks, trackProd)
	params := parameter.NewParameters(c.Parameters)

	m := &Manager{
		settings:      settings,
		logger:        slog.Default(),
		commands:      cmdProd,
		players:       players.Controller(),
		tracks:        mix.Controller(),
		params:        params.Controller(),
		unusedPlayers: playerCons,
		unusedTracks:  trackCons,
	}
	for _, opt := range opts {
		opt(m)
	}

	r := &Renderer{
		dt:            settings.Dt(),
		volume:        settings.MasterVolume,
		commands:      cmdCons,
		players:       players,
		unusedPlayers: playerProd,
		mixer:         mix,
		params:        params,
		left:          make([]float32, settings.BlockSize),
		right:         make([]float32, settings.BlockSize),
	}

	m.logger.Debug("audio manager created",
		slog.Int("sample_rate", int(settings.SampleRate)),
		slog.Int("block_size", settings.BlockSize),
		slog.Int("sounds", c.Sounds),
		slog.Int("sub_tracks", c.SubTracks),
		slog.Int("parameters", c.Parameters),
	)
	return m, r
}

func (m *Manager) Settings() Settings { return m.settings }

func (m *Manager) send(cmd command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.commands.Push(cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd.kind, ErrCommandQueueFull)
	}
	return nil
}

// sendReserved sends a command that fills a freshly reserved slot,
// releasing the reservation when the command cannot be queued.
func (m *Manager) sendReserved(ctrl *arena.Controller, cmd command) error {
	if err := m.send(cmd); err != nil {
		if rerr := ctrl.Release(cmd.key); rerr != nil {
			m.logger.Error("releasing reservation", slog.String("key", cmd.key.String()), slog.Any("error", rerr))
		}
		return err
	}
	return nil
}

// PlaySound starts a player for s. The player joins the mix at the
// renderer's next block.
func (m *Manager) PlaySound(s sound.Sound, settings sound.PlayerSettings) (*SoundHandle, error) {
	key, err := m.players.TryReserve()
	if err != nil {
		return nil, fmt.Errorf("play sound: %w", err)
	}

	p := sound.NewPlayer(s, settings)
	if err := m.sendReserved(m.players, command{kind: cmdAddPlayer, key: key, player: p}); err != nil {
		return nil, err
	}

	m.logger.Debug("sound queued", slog.String("key", key.String()), slog.String("track", settings.Track.String()))
	return &SoundHandle{key: key, sound: s, shared: p.Shared(), m: m}, nil
}

// AddSubTrack creates a sub-track routed into the main track. Its effects
// are initialized here, before the track reaches the renderer.
func (m *Manager) AddSubTrack(settings mixer.TrackSettings) (*TrackHandle, error) {
	key, err := m.tracks.TryReserve()
	if err != nil {
		return nil, fmt.Errorf("add sub-track: %w", err)
	}

	t := mixer.NewTrack(settings)
	t.Init(m.settings.SampleRate)
	if err := m.sendReserved(m.tracks, command{kind: cmdAddSubTrack, key: key, track: t}); err != nil {
		return nil, err
	}

	id := mixer.SubTrackID(key)
	m.logger.Debug("sub-track queued", slog.String("track", id.String()), slog.Int("effects", len(settings.Effects)))
	return &TrackHandle{id: id, m: m}, nil
}

// AddParameter creates a parameter resting at value.
func (m *Manager) AddParameter(value float64) (*ParameterHandle, error) {
	key, err := m.params.TryReserve()
	if err != nil {
		return nil, fmt.Errorf("add parameter: %w", err)
	}
	if err := m.sendReserved(m.params, command{kind: cmdAddParameter, key: key, value: value}); err != nil {
		return nil, err
	}
	return &ParameterHandle{id: parameter.NewID(key), m: m}, nil
}

// NumSounds counts reserved player slots. A stopped player gives its slot
// back when the renderer sweeps it, which can be before
// FreeUnusedResources has closed its sound.
func (m *Manager) NumSounds() int     { return m.players.Reserved() }
func (m *Manager) NumSubTracks() int  { return m.tracks.Reserved() }
func (m *Manager) NumParameters() int { return m.params.Reserved() }

// FreeUnusedResources drops the players and sub-tracks the renderer has
// finished with and returns how many were freed. Sounds implementing
// io.Closer are closed.
func (m *Manager) FreeUnusedResources() int {
	m.freeMu.Lock()
	defer m.freeMu.Unlock()

	freed := 0
	for {
		p, ok := m.unusedPlayers.Pop()
		if !ok {
			break
		}
		if c, ok := p.Sound().(io.Closer); ok {
			if err := c.Close(); err != nil {
				m.logger.Warn("closing finished sound", slog.Any("error", err))
			}
		}
		freed++
	}
	for {
		if _, ok := m.unusedTracks.Pop(); !ok {
			break
		}
		freed++
	}
	if freed > 0 {
		m.logger.Debug("freed unused resources", slog.Int("count", freed))
	}
	return freed
}
