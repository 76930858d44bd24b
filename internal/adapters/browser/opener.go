package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"relato/internal/domain"
)

// ErrNoURL is returned for an image with neither a resolvable url nor a fallback
var ErrNoURL = errors.New("image has no openable url")

// Opener opens gallery images in the system browser
type Opener struct {
	base *url.URL
	run  func(name string, args ...string) error
}

// NewOpener creates an opener resolving relative image urls against siteURL.
// An empty siteURL sends relative images to their fallback url.
func NewOpener(siteURL string) (*Opener, error) {
	o := &Opener{run: runCommand}
	if siteURL == "" {
		return o, nil
	}
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid site url %q: scheme must be http or https", siteURL)
	}
	o.base = base
	return o, nil
}

// Open opens img in the browser
func (o *Opener) Open(img domain.GalleryImage) error {
	uri, err := o.BuildURL(img)
	if err != nil {
		return err
	}
	return o.openURI(uri)
}

// BuildURL returns the absolute url to open for img
func (o *Opener) BuildURL(img domain.GalleryImage) (string, error) {
	if img.URL != "" {
		u, err := url.Parse(img.URL)
		if err == nil {
			if u.IsAbs() {
				return u.String(), nil
			}
			if o.base != nil {
				return o.base.ResolveReference(u).String(), nil
			}
		}
	}
	if img.FallbackURL != "" {
		return img.FallbackURL, nil
	}
	return "", fmt.Errorf("%s: %w", img.ID, ErrNoURL)
}

func (o *Opener) openURI(uri string) error {
	switch runtime.GOOS {
	case "darwin":
		return o.run("open", uri)
	case "linux":
		return o.run("xdg-open", uri)
	case "windows":
		return o.run("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
