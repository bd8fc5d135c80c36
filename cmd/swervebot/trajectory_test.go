package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.viam.com/test"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "path.yaml")
	test.That(t, os.WriteFile(path, []byte(body), 0o600), test.ShouldBeNil)
	return path
}

func TestLoadTrajectory(t *testing.T) {
	traj, err := loadTrajectory(writeFile(t, `
- {t: 0, x: 0, y: 0, vx: 1}
- {t: 1.5, x: 1.5, y: 0, theta: 0.5, vx: 1, omega: 0.2}
`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, traj.Duration(), test.ShouldEqual, 1500*time.Millisecond)
	mid := traj.Sample(750 * time.Millisecond)
	test.That(t, mid.Pose.X, test.ShouldAlmostEqual, 0.75)
	test.That(t, mid.Pose.Theta, test.ShouldAlmostEqual, 0.25)
	test.That(t, mid.Omega, test.ShouldAlmostEqual, 0.1)
}

func TestLoadTrajectoryRejectsBadFiles(t *testing.T) {
	_, err := loadTrajectory(filepath.Join(t.TempDir(), "missing.yaml"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = loadTrajectory(writeFile(t, "[]"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = loadTrajectory(writeFile(t, "- {t: 1}\n- {t: 0}\n"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = loadTrajectory(writeFile(t, "- {t: 0, speed: 3}\n"))
	test.That(t, err, test.ShouldNotBeNil)
}
