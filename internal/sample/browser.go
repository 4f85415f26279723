package sample

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// downloadBrowser returns a cached Chromium executable, downloading it to
// ~/.cache/rod/browser on first use.
func downloadBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("sample: downloading browser: %w", err)
	}
	return path, nil
}
