package main

import (
	"testing"

	"go.viam.com/test"

	"github.com/tigerbot-team/swervebot/pkg/drivetrain"
	"github.com/tigerbot-team/swervebot/pkg/joystick"
	"github.com/tigerbot-team/swervebot/pkg/trajectory"
)

func TestOptionsCyclesModes(t *testing.T) {
	c := newControls(true, nil)
	var names []string
	for i := 0; i < 5; i++ {
		a, ok := c.onButton(joystick.ButtonOptions)
		test.That(t, ok, test.ShouldBeTrue)
		names = append(names, a.mode.Name())
	}
	test.That(t, names, test.ShouldResemble, []string{
		"manual (field)", "manual (robot)", "locked", "disabled", "manual (field)",
	})

	a, _ := c.onButton(joystick.ButtonShare)
	test.That(t, a.mode, test.ShouldResemble, drivetrain.Disabled{})
	a, _ = c.onButton(joystick.ButtonShare)
	test.That(t, a.mode, test.ShouldResemble, drivetrain.Locked{})
}

func TestPSDisablesAndRestartsCycle(t *testing.T) {
	c := newControls(false, nil)
	c.onButton(joystick.ButtonOptions)
	a, ok := c.onButton(joystick.ButtonPS)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, a.mode, test.ShouldResemble, drivetrain.Disabled{})
	a, _ = c.onButton(joystick.ButtonOptions)
	test.That(t, a.mode, test.ShouldResemble, drivetrain.Manual{FieldRelative: false})
}

func TestOtherButtons(t *testing.T) {
	c := newControls(true, nil)
	a, ok := c.onButton(joystick.ButtonTriangle)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, a.zeroHeading, test.ShouldBeTrue)
	test.That(t, a.mode, test.ShouldBeNil)

	a, _ = c.onButton(joystick.ButtonCross)
	test.That(t, a.mode, test.ShouldResemble, drivetrain.Locked{})

	_, ok = c.onButton(joystick.ButtonCircle)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = c.onButton(joystick.ButtonL1)
	test.That(t, ok, test.ShouldBeFalse)

	traj, err := trajectory.NewSampled([]trajectory.State{{}})
	test.That(t, err, test.ShouldBeNil)
	c = newControls(true, traj)
	a, ok = c.onButton(joystick.ButtonCircle)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, a.mode.Name(), test.ShouldEqual, "autonomous")
}

func TestSoundFor(t *testing.T) {
	test.That(t, soundFor("/sounds", drivetrain.Manual{FieldRelative: true}), test.ShouldEqual, "/sounds/manual.wav")
	test.That(t, soundFor("/sounds", drivetrain.Locked{}), test.ShouldEqual, "/sounds/locked.wav")
}
