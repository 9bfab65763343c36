package common

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
)

const (
	// ContainerPrefix and VolumePrefix are prepended to "{latency}_{index}"
	// to name a simulated node and its data volume.
	ContainerPrefix = "drand_container_"
	VolumePrefix    = "drand_volume_"

	// TemplateName is the compose template looked up in the working directory.
	TemplateName = "docker-compose.yaml.j2"
	// HostsVar is the only variable bound when rendering the template.
	HostsVar = "hosts"

	DefaultServePort = 8000
	DefaultLogLevel  = "info"
)

// NewLogger returns a logger writing to stderr with the component field
// printed first and the caller appended to every entry.
func NewLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %s", level, err)
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component"},
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
		},
		CallerFirst: true,
	})
	logger.SetReportCaller(true)
	return logger, nil
}

// Getenv returns the value of the environment variable k, or def when it is
// unset or empty.
func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
