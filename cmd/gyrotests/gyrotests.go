// Command gyrotests prints the heading and rate of a gyro, for checking its
// sign and drift before it goes on the robot.
package main

import (
	"context"
	"fmt"
	"math"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"

	"github.com/tigerbot-team/swervebot/pkg/config"
	"github.com/tigerbot-team/swervebot/pkg/hardware"
)

var cli struct {
	Config string `help:"YAML config file; defaults are used if empty." type:"existingfile"`
	Gyro   string `help:"Heading source." enum:"bno08x,imu,imu-i2c" default:"bno08x"`
}

func main() {
	kong.Parse(&cli)
	logger := golog.NewDevelopmentLogger("gyrotests")

	cfg := config.Default()
	if cli.Config != "" {
		var err error
		if cfg, err = config.Load(cli.Config); err != nil {
			logger.Fatalw("bad config", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	gyro, loop, err := hardware.OpenGyro(hardware.GyroKind(cli.Gyro), cfg.Gyro, clock.New(), logger)
	if err != nil {
		logger.Fatalw("failed to open gyro", "error", err)
	}
	go func() {
		if err := loop(ctx); err != nil {
			logger.Errorw("gyro loop failed", "error", err)
		}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	zeroed := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		heading, err := gyro.Heading()
		if err != nil {
			fmt.Println("Heading:", err)
			continue
		}
		if !zeroed {
			if err := gyro.Reset(); err == nil {
				zeroed = true
			}
		}
		rate, _ := gyro.Rate()
		fmt.Printf("Heading: %7.2f°  rate: %7.2f°/s\n", heading*180/math.Pi, rate*180/math.Pi)
	}
}
