package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/poly/service"
)

// Config holds the audio settings
type Config struct {
	Enabled      bool
	Muted        bool
	MasterVolume float64 // 0..1
	SampleRate   int
	BufferPeriod time.Duration
}

// Service owns the speaker and the wind loop
// Falls back to silent mode when disabled or no audio device is available
type Service struct {
	cfg Config

	mu     sync.Mutex
	ctrl   *beep.Ctrl
	volume *effects.Volume

	running atomic.Bool
	muted   atomic.Bool
	stopped atomic.Bool
}

// NewService creates the audio service
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Name implements service.Service
func (s *Service) Name() string { return "audio" }

// Dependencies implements service.Service
func (s *Service) Dependencies() []string { return nil }

// Init builds the streamer chain, the device is opened in Start
func (s *Service) Init() error {
	if s.cfg.SampleRate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %d", s.cfg.SampleRate)
	}
	sr := beep.SampleRate(s.cfg.SampleRate)

	s.volume = &effects.Volume{
		Streamer: NewWindGenerator(sr, uint32(time.Now().UnixNano())),
		Base:     2,
		Volume:   VolumeExponent(s.cfg.MasterVolume),
		Silent:   s.cfg.Muted || s.cfg.MasterVolume <= 0,
	}
	s.ctrl = &beep.Ctrl{Streamer: s.volume}
	s.muted.Store(s.cfg.Muted)
	return nil
}

// Start opens the speaker and begins the loop
// Device errors are logged and leave the service silent
func (s *Service) Start() error {
	if !s.cfg.Enabled {
		log.Printf("audio: disabled by config")
		return nil
	}

	sr := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(s.cfg.BufferPeriod)); err != nil {
		log.Printf("audio: no device, running silent: %v", err)
		return nil
	}
	speaker.Play(s.ctrl)
	s.running.Store(true)
	log.Printf("audio: wind loop at %d Hz", s.cfg.SampleRate)
	return nil
}

// Stop halts playback and releases the device
func (s *Service) Stop() error {
	if !s.stopped.CompareAndSwap(false, true) {
		return nil
	}
	if s.running.Swap(false) {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

// ToggleMute flips the mute state and returns the new state
func (s *Service) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	muted := !s.muted.Load()
	s.muted.Store(muted)
	s.withSpeakerLock(func() {
		if s.volume != nil {
			s.volume.Silent = muted || s.cfg.MasterVolume <= 0
		}
	})
	return muted
}

// IsMuted reports the mute state
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// IsRunning reports whether a device is playing the loop
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// SetPaused suspends the loop without releasing the device
func (s *Service) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.withSpeakerLock(func() {
		if s.ctrl != nil {
			s.ctrl.Paused = paused
		}
	})
}

// Paused reports whether the loop is suspended
func (s *Service) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paused bool
	s.withSpeakerLock(func() {
		paused = s.ctrl != nil && s.ctrl.Paused
	})
	return paused
}

// withSpeakerLock guards streamer fields against the mixing goroutine
func (s *Service) withSpeakerLock(fn func()) {
	if s.running.Load() {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Contribute publishes the service as the world's audio player
func (s *Service) Contribute(publish service.ResourcePublisher) {
	publish(s)
}

// VolumeExponent converts a linear 0..1 gain to the base-2 exponent effects.Volume expects
func VolumeExponent(gain float64) float64 {
	if gain <= 0 {
		return math.Inf(-1)
	}
	return math.Log2(math.Min(gain, 1))
}
