package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
)

// SetupProfiling starts continuous profiling against a pyroscope server.
// The caller stops the returned profiler on exit.
func SetupProfiling(appName, serverAddress string) (*pyroscope.Profiler, error) {
	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)
	profiler, err := pyroscope.Start(Config(appName, serverAddress))
	if err != nil {
		return nil, fmt.Errorf("error starting profiler: %w", err)
	}
	return profiler, nil
}

// Config is the pyroscope configuration SetupProfiling starts with.
func Config(appName, serverAddress string) pyroscope.Config {
	return pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   serverAddress,
		Logger:          pyroscope.StandardLogger,
		Tags:            map[string]string{"hostname": os.Getenv("HOSTNAME")},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	}
}
