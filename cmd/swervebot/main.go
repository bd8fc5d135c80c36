// Command swervebot runs the drivetrain from a joystick.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/tigerbot-team/swervebot/pkg/config"
	"github.com/tigerbot-team/swervebot/pkg/controlloop"
	"github.com/tigerbot-team/swervebot/pkg/drivetrain"
	"github.com/tigerbot-team/swervebot/pkg/hardware"
	"github.com/tigerbot-team/swervebot/pkg/joystick"
	"github.com/tigerbot-team/swervebot/pkg/screen"
	"github.com/tigerbot-team/swervebot/pkg/sound"
	"github.com/tigerbot-team/swervebot/pkg/trajectory"
)

type CLI struct {
	Config     string `help:"YAML config file; defaults are used if empty." type:"existingfile"`
	InUse      string `help:"Write the effective config here." default:"swervebot-in-use.yaml"`
	Dummy      bool   `help:"Simulate the motors instead of using the CAN bus."`
	CAN        string `name:"can" help:"CAN interface, overrides the config."`
	Joystick   string `help:"Joystick device, overrides the config."`
	Gyro       string `help:"Heading source." enum:"bno08x,imu,imu-i2c,none" default:"bno08x"`
	Trajectory string `help:"Trajectory to run on Circle." type:"existingfile"`
	Screen     string `help:"Status framebuffer." default:"/dev/fb1"`
	Sounds     string `help:"Directory of mode sounds." default:"/sounds"`
	Debug      bool   `help:"Debug logging."`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("swervebot"), kong.Description("Swerve drivetrain controller."))

	logger := golog.NewLogger("swervebot")
	if cli.Debug {
		logger = golog.NewDebugLogger("swervebot")
	}
	logger.Infow("---- swervebot ----", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cli, logger); err != nil {
		logger.Errorw("swervebot failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(cli CLI) (*config.Config, error) {
	cfg := config.Default()
	if cli.Config != "" {
		var err error
		if cfg, err = config.Load(cli.Config); err != nil {
			return nil, err
		}
	}
	if cli.CAN != "" {
		cfg.CAN.Interface = cli.CAN
	}
	if cli.Joystick != "" {
		cfg.Driver.Device = cli.Joystick
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cli CLI, logger golog.Logger) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	if cli.InUse != "" {
		if err := cfg.WriteInUse(cli.InUse); err != nil {
			logger.Warnw("failed to write in-use config", "error", err)
		}
	}
	var traj trajectory.Trajectory
	if cli.Trajectory != "" {
		if traj, err = loadTrajectory(cli.Trajectory); err != nil {
			return err
		}
	}

	clk := clock.New()
	var hw *hardware.Hardware
	if cli.Dummy {
		hw = hardware.NewDummy(cfg, clk, logger.Named("hw"))
	} else {
		if hw, err = hardware.NewCAN(cfg, clk, logger.Named("hw")); err != nil {
			return err
		}
		if err := hw.AddGyro(hardware.GyroKind(cli.Gyro)); err != nil {
			return multierr.Append(err, hw.Close())
		}
	}

	// The hardware readers outlive the control loop so that the final stop
	// commands still reach the motors.
	hwCtx, hwCancel := context.WithCancel(context.Background())
	defer hwCancel()
	hwDone := make(chan error, 1)
	go func() { hwDone <- hw.Run(hwCtx) }()

	modules := hw.NewModules()
	axes := &joystick.Axes{}
	coord, err := drivetrain.New(cfg, hardware.DrivetrainModules(modules), hw.Gyro, axes, logger.Named("drivetrain"))
	if err != nil {
		return multierr.Append(err, hw.Close())
	}
	loop, err := controlloop.New(cfg.Period, clk, logger.Named("loop"))
	if err != nil {
		return multierr.Append(err, hw.Close())
	}

	player := sound.NewPlayer(logger.Named("sound"))
	defer player.Close()
	player.Play(soundFor(cli.Sounds, drivetrain.Disabled{}))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := loop.Run(gctx, coord.Tick)
		logger.Info("zeroing motors for shut down")
		return multierr.Combine(err, coord.Stop(), hw.Close())
	})
	g.Go(func() error {
		select {
		case err := <-hwDone:
			if err != nil {
				return errors.Wrap(err, "hardware")
			}
			return nil
		case <-gctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		screen.New(cli.Screen, 500*time.Millisecond, coord.Status, clk, logger.Named("screen")).Loop(gctx)
		return nil
	})

	buttons := make(chan uint8, 8)
	g.Go(func() error {
		readJoystick(gctx, cfg.Driver.Device, axes, buttons, clk, logger.Named("joystick"))
		return nil
	})
	g.Go(func() error {
		ctl := newControls(cfg.Driver.FieldRelative, traj)
		for {
			select {
			case <-gctx.Done():
				return nil
			case b := <-buttons:
				a, ok := ctl.onButton(b)
				if !ok {
					continue
				}
				if a.zeroHeading {
					coord.ZeroHeading()
				}
				if a.mode != nil {
					logger.Infow("mode requested", "mode", a.mode.Name())
					coord.SetMode(a.mode)
					player.Play(soundFor(cli.Sounds, a.mode))
				}
			}
		}
	})
	return g.Wait()
}

// readJoystick waits for the joystick to appear and reopens it whenever it
// goes away. Losing it centres the sticks.
func readJoystick(ctx context.Context, device string, axes *joystick.Axes, buttons chan<- uint8, clk clock.Clock, logger golog.Logger) {
	firstLog := true
	for ctx.Err() == nil {
		j, err := joystick.NewJoystick(device)
		if err != nil {
			if firstLog {
				logger.Warnw("waiting for joystick", "error", err)
				firstLog = false
			}
			select {
			case <-ctx.Done():
			case <-clk.After(time.Second):
			}
			continue
		}
		logger.Infow("opened joystick", "device", device)
		firstLog = true
		stopClose := context.AfterFunc(ctx, func() { _ = j.Close() })
		err = joystick.Pump(ctx, j, axes, buttons)
		if stopClose() {
			_ = j.Close()
		}
		if ctx.Err() == nil {
			logger.Warnw("joystick failed", "error", err)
		}
	}
}
