package audio

import (
	"errors"
	"log/slog"
	"time"

	"github.com/lixenwraith/magic-lab/parameter"
)

// ServiceName is the hub key of the audio service
const ServiceName = "audio"

// Service opens the speaker for a Player; a missing device leaves the player silent
type Service struct {
	player *Player
	log    *slog.Logger
}

func NewService(player *Player, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{player: player, log: log}
}

func (s *Service) Name() string           { return ServiceName }
func (s *Service) Dependencies() []string { return nil }

// Init never fails; sound is optional
func (s *Service) Init() error {
	err := s.player.Initialize()
	switch {
	case err == nil:
		s.log.Info("audio ready")
	case errors.Is(err, ErrAudioDisabled):
		s.log.Info("audio disabled")
	default:
		s.log.Warn("audio unavailable", "error", err)
	}
	return nil
}

func (s *Service) Start() error { return nil }

// Stop lets playing cues finish for up to parameter.ShutdownGrace, then closes the output
func (s *Service) Stop() error {
	deadline := time.Now().Add(parameter.ShutdownGrace)
	for s.player.Active() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	s.player.Close()
	return nil
}

func (s *Service) Player() *Player {
	return s.player
}
