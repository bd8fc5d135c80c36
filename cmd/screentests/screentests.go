// Command screentests shows a made-up drivetrain status on the screen. Each
// line typed on stdin becomes the mode; "fault" toggles a module fault.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/tigerbot-team/swervebot/pkg/chassis"
	"github.com/tigerbot-team/swervebot/pkg/drivetrain"
	"github.com/tigerbot-team/swervebot/pkg/screen"
)

func main() {
	logger := golog.NewDevelopmentLogger("screentests")

	var lock sync.Mutex
	status := drivetrain.Status{Mode: "disabled"}
	for i := range status.States {
		status.States[i].Angle = float64(i) * math.Pi / 4
	}
	get := func() drivetrain.Status {
		lock.Lock()
		defer lock.Unlock()
		return status
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go screen.New("/dev/fb1", 200*time.Millisecond, get, clock.New(), logger).Loop(ctx)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nFailed to read stdin: ", err)
			return
		}
		line = strings.TrimSpace(line)
		lock.Lock()
		if line == "fault" {
			if status.Faults[chassis.FrontRight] == nil {
				status.Faults[chassis.FrontRight] = errors.New("test fault")
			} else {
				status.Faults[chassis.FrontRight] = nil
			}
		} else {
			status.Mode = line
		}
		lock.Unlock()
	}
}
