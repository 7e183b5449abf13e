package nav

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"gatectl/internal/gateway"
)

// Desktop navigates with the platform's browser launcher. Gateway-relative
// targets are joined onto GatewayAddr before leaving the process. When no
// launcher is available the target is written to Out, making the terminal
// session the context of record.
type Desktop struct {
	// GatewayAddr is the base address of the proxy gateway, e.g.
	// "http://localhost:8080".
	GatewayAddr string
	// BrowserCommand overrides the platform launcher with a specific
	// browser binary. Optional.
	BrowserCommand string
	// Out receives targets that could not be opened elsewhere. Defaults to
	// os.Stdout.
	Out io.Writer
}

func (d *Desktop) OpenNewContext(target string) error {
	name, args := d.launcher()
	if name == "" {
		return fmt.Errorf("no browser launcher available on %s", runtime.GOOS)
	}

	full := gateway.Absolute(d.GatewayAddr, target)
	cmd := exec.Command(name, append(args, full)...)
	// The launcher gets nothing of ours: no stdio, no way to reach back.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	go cmd.Wait() // reap without holding the event loop
	return nil
}

func (d *Desktop) ReplaceCurrent(target string) error {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, gateway.Absolute(d.GatewayAddr, target)); err != nil {
		return fmt.Errorf("writing target to current context: %w", err)
	}
	return nil
}

func (d *Desktop) launcher() (string, []string) {
	if d.BrowserCommand != "" {
		return d.BrowserCommand, nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return "", nil
		}
		return "xdg-open", nil
	}
}
