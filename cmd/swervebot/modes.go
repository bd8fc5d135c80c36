package main

import (
	"path/filepath"
	"strings"

	"github.com/tigerbot-team/swervebot/pkg/drivetrain"
	"github.com/tigerbot-team/swervebot/pkg/joystick"
	"github.com/tigerbot-team/swervebot/pkg/trajectory"
)

// controls turns controller buttons into drivetrain requests.
//
//	Options  next mode
//	Share    previous mode
//	PS       disable
//	Cross    lock wheels in an X
//	Triangle zero the heading
//	Circle   run the loaded trajectory
type controls struct {
	modes      []drivetrain.Mode
	idx        int
	trajectory trajectory.Trajectory
}

func newControls(fieldRelative bool, traj trajectory.Trajectory) *controls {
	return &controls{
		modes: []drivetrain.Mode{
			drivetrain.Disabled{},
			drivetrain.Manual{FieldRelative: fieldRelative},
			drivetrain.Manual{FieldRelative: !fieldRelative},
			drivetrain.Locked{},
		},
		trajectory: traj,
	}
}

type action struct {
	mode        drivetrain.Mode
	zeroHeading bool
}

func (c *controls) cycle(delta int) drivetrain.Mode {
	c.idx = (c.idx + delta + len(c.modes)) % len(c.modes)
	return c.modes[c.idx]
}

// onButton returns what a button press asks for. ok is false for buttons
// that do nothing.
func (c *controls) onButton(button uint8) (a action, ok bool) {
	switch button {
	case joystick.ButtonOptions:
		return action{mode: c.cycle(1)}, true
	case joystick.ButtonShare:
		return action{mode: c.cycle(-1)}, true
	case joystick.ButtonPS:
		c.idx = 0
		return action{mode: drivetrain.Disabled{}}, true
	case joystick.ButtonCross:
		return action{mode: drivetrain.Locked{}}, true
	case joystick.ButtonTriangle:
		return action{zeroHeading: true}, true
	case joystick.ButtonCircle:
		if c.trajectory == nil {
			return action{}, false
		}
		return action{mode: drivetrain.Autonomous{Trajectory: c.trajectory}}, true
	}
	return action{}, false
}

// soundFor is the clip announcing a mode, e.g. "manual (field)" plays
// manual.wav.
func soundFor(dir string, m drivetrain.Mode) string {
	name := m.Name()
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return filepath.Join(dir, name+".wav")
}
