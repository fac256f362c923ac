package level

import "github.com/Faultbox/physics-scene/internal/config"

// Script runs the physics level under a script manager.
type Script struct {
	cfg  *config.Config
	ctrl *Controller
}

// NewScript creates the level script for cfg.
func NewScript(cfg *config.Config) *Script {
	return &Script{cfg: cfg}
}

// Initialize sets the level up on host.
func (s *Script) Initialize(host *Host) error {
	c, err := Setup(host, s.cfg)
	if err != nil {
		return err
	}
	s.ctrl = c
	return nil
}

// Update advances the level by one frame.
func (s *Script) Update(dt float64) error {
	if s.ctrl == nil {
		return nil
	}
	return s.ctrl.Update(dt)
}

// Exit tears the level down.
func (s *Script) Exit() error {
	if s.ctrl != nil {
		s.ctrl.Teardown()
	}
	return nil
}

// Controller returns the running controller, or nil before Initialize.
func (s *Script) Controller() *Controller {
	return s.ctrl
}
