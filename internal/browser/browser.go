package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
)

// Validate rejects anything other than an absolute http or https URL.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	return nil
}

// Open launches the system browser for rawURL. $BROWSER wins when set,
// otherwise we fall back to the platform opener.
func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}

	if b := os.Getenv("BROWSER"); b != "" {
		return exec.Command(b, rawURL).Start()
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
