package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/tigerbot-team/swervebot/pkg/chassis"
	"github.com/tigerbot-team/swervebot/pkg/trajectory"
)

type fileState struct {
	Time  float64 `yaml:"t"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Omega float64 `yaml:"omega"`
}

// loadTrajectory reads a trajectory written by an offline planner: a YAML
// list of states with the time in seconds from the start.
func loadTrajectory(path string) (*trajectory.Sampled, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read trajectory %q", path)
	}
	var in []fileState
	if err := yaml.UnmarshalStrict(raw, &in); err != nil {
		return nil, errors.Wrapf(err, "failed to parse trajectory %q", path)
	}
	states := make([]trajectory.State, len(in))
	for i, s := range in {
		states[i] = trajectory.State{
			Time:  time.Duration(s.Time * float64(time.Second)),
			Pose:  chassis.Pose{X: s.X, Y: s.Y, Theta: s.Theta},
			VX:    s.VX,
			VY:    s.VY,
			Omega: s.Omega,
		}
	}
	traj, err := trajectory.NewSampled(states)
	return traj, errors.Wrapf(err, "bad trajectory %q", path)
}
