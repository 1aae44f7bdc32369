// Command colorpicker is a small host for the color picker: a window with a
// preview of the chosen color and a button that opens the picker.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/fileutils"
	"colorpicker/pkg/logger"
	"colorpicker/pkg/options"
	"colorpicker/pkg/profiling"
)

type config struct {
	configPath     string
	color          string
	maxFields      int
	export         string
	exportPassword string
	profile        bool
	profileServer  string
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("colorpicker", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.configPath, "config", "", "TOML config file")
	fs.StringVar(&cfg.color, "color", "", "initial color: hex, rgb(r,g,b) or hsv(h,s,v)")
	fs.IntVar(&cfg.maxFields, "max-fields", 0, "swatch palette capacity")
	fs.StringVar(&cfg.export, "export", "", "write the accepted color to an image or archive file")
	fs.StringVar(&cfg.exportPassword, "export-password", "", "encrypt a zip export")
	fs.BoolVar(&cfg.profile, "profile", false, "send profiles to a pyroscope server")
	fs.StringVar(&cfg.profileServer, "profile-server", "", "pyroscope server address")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.export != "" && !fileutils.IsImageFileMap(cfg.export) {
		if _, ok := fileutils.ArchiveKind(cfg.export); !ok {
			return config{}, fmt.Errorf("cannot export to %s: unknown file type", cfg.export)
		}
	}
	return cfg, nil
}

// loadOptions reads the config file, if any, and applies flag overrides.
func loadOptions(cfg config) (*options.Options, error) {
	opts := options.Options{}.InitDefault()
	if cfg.configPath != "" {
		isFile, err := fileutils.IsFile(cfg.configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if !isFile {
			return nil, fmt.Errorf("error reading config: %s is a directory", cfg.configPath)
		}
		if opts, err = options.LoadFile(cfg.configPath); err != nil {
			return nil, err
		}
	}
	if cfg.color != "" {
		opts.Color = cfg.color
	}
	if cfg.maxFields > 0 {
		opts.MaxFields = cfg.maxFields
	}
	if cfg.profile {
		opts.Profiling = true
	}
	if cfg.profileServer != "" {
		opts.ProfilingServer = cfg.profileServer
	}
	opts.Normalize()
	return opts, nil
}

func main() {
	appLogger := logger.InitLogger("colorpicker: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln("Error:", err)
	}
	opts, err := loadOptions(cfg)
	if err != nil {
		log.Fatalln("Error:", err)
	}

	if opts.Profiling {
		appLogger.Println("Starting Pyroscope")
		profiler, err := profiling.SetupProfiling("colorpicker.golang.app", opts.ProfilingServer)
		if err != nil {
			appLogger.Println(err)
		} else {
			defer profiler.Stop()
		}
	}

	a := app.NewWithID("colorpicker")
	a.Settings().SetTheme(apptheme.PickerTheme{})

	w := newMainWindow(a, opts, cfg, appLogger)
	w.ShowAndRun()
}
