// +build linux darwin

//go:build linux || darwin

package rawmode

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// openTestTTY opens the controlling terminal, skipping the test if none is
// available (as in most CI sandboxes). Raw mode can only be exercised
// end-to-end against a real tty; a pipe or regular file rejects the ioctl.
func openTestTTY(t *testing.T) *os.File {
	t.Helper()
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		t.Skipf("no controlling tty available: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestEnterClearsICANONAndECHO(t *testing.T) {
	f := openTestTTY(t)
	fd := int(f.Fd())

	guard, err := Enter(fd)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	defer guard.Restore()

	current, err := unix.IoctlGetTermios(fd, ioctlGetReq)
	if err != nil {
		t.Fatalf("IoctlGetTermios: %v", err)
	}
	if current.Lflag&unix.ICANON != 0 {
		t.Fatalf("expected ICANON cleared")
	}
	if current.Lflag&unix.ECHO != 0 {
		t.Fatalf("expected ECHO cleared")
	}
}

func TestRestoreReinstallsPriorSettings(t *testing.T) {
	f := openTestTTY(t)
	fd := int(f.Fd())

	before, err := unix.IoctlGetTermios(fd, ioctlGetReq)
	if err != nil {
		t.Fatalf("IoctlGetTermios: %v", err)
	}
	wasCanon := before.Lflag & unix.ICANON

	guard, err := Enter(fd)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if err := guard.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	after, err := unix.IoctlGetTermios(fd, ioctlGetReq)
	if err != nil {
		t.Fatalf("IoctlGetTermios: %v", err)
	}
	if after.Lflag&unix.ICANON != wasCanon {
		t.Fatalf("expected ICANON restored to %v", wasCanon != 0)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	f := openTestTTY(t)
	fd := int(f.Fd())

	guard, err := Enter(fd)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if err := guard.Restore(); err != nil {
		t.Fatalf("first Restore: %v", err)
	}
	if err := guard.Restore(); err != nil {
		t.Fatalf("second Restore: %v", err)
	}
}
