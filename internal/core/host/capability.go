// Package host probes the environment the process was started from for the
// markers set by the desktop shell.
package host

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	MarkerDesktop          = "CUBESHUFFLE_DESKTOP"
	MarkerDesktopInternals = "CUBESHUFFLE_DESKTOP_INTERNALS"
)

type markers struct {
	Desktop   *string `env:"CUBESHUFFLE_DESKTOP"`
	Internals *string `env:"CUBESHUFFLE_DESKTOP_INTERNALS"`
}

// DetectDesktop reports whether env carries at least one non-null desktop
// marker. A nil env means no host is reachable and yields false.
func DetectDesktop(environ map[string]string) bool {
	if environ == nil {
		return false
	}

	var m markers
	if err := env.ParseWithOptions(&m, env.Options{Environment: environ}); err != nil {
		return false
	}

	return present(m.Desktop) || present(m.Internals)
}

// DetectProcess runs DetectDesktop against the current process environment.
func DetectProcess() bool {
	return DetectDesktop(environMap(os.Environ()))
}

func present(v *string) bool {
	if v == nil {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(*v)) {
	case "", "null", "undefined":
		return false
	}
	return true
}

func environMap(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}
