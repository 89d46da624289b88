//go:build !windows

package doctor

import "os/exec"

// resetTerminal undoes raw mode left behind by X11 key grabs.
func resetTerminal() {
	exec.Command("stty", "sane").Run()
}
