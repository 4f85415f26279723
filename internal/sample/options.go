package sample

import "time"

type rendererConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
}

func defaultConfig() rendererConfig {
	return rendererConfig{
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// Option configures a [Renderer].
type Option func(*rendererConfig)

// WithChromePath sets the Chrome or Chromium executable. By default
// chromedp searches the standard locations.
func WithChromePath(path string) Option {
	return func(c *rendererConfig) {
		c.chromePath = path
	}
}

// WithTimeout bounds a single render. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox, which is needed when running
// as root inside a container.
func WithNoSandbox() Option {
	return func(c *rendererConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a Chromium build into the user cache when no
// chrome path is given. Ignored when [WithChromePath] is set.
func WithAutoDownload() Option {
	return func(c *rendererConfig) {
		c.autoDownload = true
	}
}
