package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magic-lab/core"
)

// ScreenServiceName is the hub key of the terminal screen service
const ScreenServiceName = "screen"

// ScreenService owns the tcell screen and registers it with the crash handler
type ScreenService struct {
	factory func() (tcell.Screen, error)
	screen  tcell.Screen
}

// NewScreenService creates the service; a nil factory opens the real terminal
func NewScreenService(factory func() (tcell.Screen, error)) *ScreenService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &ScreenService{factory: factory}
}

func (s *ScreenService) Name() string           { return ScreenServiceName }
func (s *ScreenService) Dependencies() []string { return nil }

func (s *ScreenService) Init() error {
	screen, err := s.factory()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen = screen
	core.SetCrashScreen(screen)
	return nil
}

func (s *ScreenService) Start() error {
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

func (s *ScreenService) Stop() error {
	if s.screen == nil {
		return nil
	}
	core.SetCrashScreen(nil)
	s.screen.Fini()
	s.screen = nil
	return nil
}

// Screen returns the live screen, nil before Init or after Stop
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}
