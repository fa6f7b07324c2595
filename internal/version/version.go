// Package version хранит сведения о сборке, задаваемые через -ldflags:
//
//	go build -ldflags "-X github.com/vladislavdragonenkov/kitchen/internal/version.version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Build — сведения о сборке бинарника.
type Build struct {
	Version string
	Commit  string
	Date    string
	Go      string
}

// Current возвращает сведения о текущей сборке.
func Current() Build {
	return Build{Version: version, Commit: commit, Date: date, Go: runtime.Version()}
}

func (b Build) String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s go=%s", b.Version, b.Commit, b.Date, b.Go)
}

// GetVersion возвращает версию сборки; попадает в ответ /healthz.
func GetVersion() string { return version }

// UserAgent — user-agent gRPC клиентов кухни: kitchen-<component>/<version>.
func UserAgent(component string) string {
	component = strings.ToLower(strings.TrimSpace(component))
	if component == "" {
		component = "client"
	}
	return fmt.Sprintf("kitchen-%s/%s", component, version)
}

// String возвращает строку сборки для логов при старте.
func String() string { return Current().String() }
