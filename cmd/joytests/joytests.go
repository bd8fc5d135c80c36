// Command joytests prints joystick events and the shaped stick values the
// drivetrain would see, for checking the axis mapping in the config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/edaniels/golog"

	"github.com/tigerbot-team/swervebot/pkg/config"
	"github.com/tigerbot-team/swervebot/pkg/drivetrain"
	"github.com/tigerbot-team/swervebot/pkg/joystick"
)

var cli struct {
	Config string `help:"YAML config file; defaults are used if empty." type:"existingfile"`
	Device string `help:"Joystick device, overrides the config." env:"JOYSTICK_DEVICE"`
}

func main() {
	kong.Parse(&cli)
	logger := golog.NewDevelopmentLogger("joytests")

	cfg := config.Default()
	if cli.Config != "" {
		var err error
		if cfg, err = config.Load(cli.Config); err != nil {
			logger.Fatalw("bad config", "error", err)
		}
	}
	if cli.Device != "" {
		cfg.Driver.Device = cli.Device
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	j, err := joystick.NewJoystick(cfg.Driver.Device)
	for err != nil {
		logger.Infow("waiting for joystick", "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
		j, err = joystick.NewJoystick(cfg.Driver.Device)
	}
	defer j.Close()

	axes := &joystick.Axes{}
	shape := func(id int, invert bool) float64 {
		v := drivetrain.ApplyDeadband(axes.Axis(id), cfg.Driver.Deadband)
		if invert {
			v = -v
		}
		return v
	}
	for ctx.Err() == nil {
		event, err := j.ReadEvent()
		if err != nil {
			logger.Errorw("failed to read from joystick", "error", err)
			os.Exit(1)
		}
		axes.Update(event)
		logger.Infow("event", "event", event.String(),
			"x", shape(cfg.Driver.XAxis, cfg.Driver.InvertX),
			"y", shape(cfg.Driver.YAxis, cfg.Driver.InvertY),
			"rot", shape(cfg.Driver.RotationAxis, cfg.Driver.InvertRot))
	}
}
