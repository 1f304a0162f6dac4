package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/solarlune/stadium3d"
	"github.com/solarlune/stadium3d/ebiten3d"
)

type options struct {
	config   string
	textures string
	export   string
	dump     string
	view     bool
	watch    bool
	verbose  bool
}

func parseOptions(args []string) (options, error) {

	opt := options{}

	fs := flag.NewFlagSet("stadium", flag.ContinueOnError)
	fs.StringVar(&opt.config, "config", "", "layout file (.toml, .yaml or .yml); the built-in stadium is used if empty")
	fs.StringVar(&opt.textures, "textures", ".", "directory the texture files are loaded from")
	fs.StringVar(&opt.export, "export", "", "write the stadium to this .glb or .gltf file")
	fs.StringVar(&opt.dump, "dump-config", "", "write the resolved layout to this .toml or .yaml file")
	fs.BoolVar(&opt.view, "view", true, "open the interactive viewer")
	fs.BoolVar(&opt.watch, "watch", false, "rebuild the stadium in the viewer whenever the -config file changes")
	fs.BoolVar(&opt.verbose, "v", false, "log debug output")

	if err := fs.Parse(args); err != nil {
		return opt, err
	}

	for _, path := range []*string{&opt.config, &opt.textures, &opt.export, &opt.dump} {
		expanded, err := homedir.Expand(*path)
		if err != nil {
			return opt, err
		}
		*path = expanded
	}

	if opt.watch && opt.config == "" {
		return opt, errors.New("-watch needs a -config file")
	}

	return opt, nil

}

// usageExitCode returns the exit status for a command line parseOptions rejected. Asking for -h isn't a failure.
func usageExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func run(opt options, logger *slog.Logger) error {

	cfg := stadium3d.DefaultConfig()

	if opt.config != "" {
		loaded, err := stadium3d.LoadConfigFile(opt.config)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Info("layout loaded", "file", opt.config, "sections", len(cfg.Layout.Sections))
	}

	if opt.dump != "" {
		if err := stadium3d.SaveConfigFile(cfg, opt.dump); err != nil {
			return err
		}
		logger.Info("layout written", "file", opt.dump)
	}

	gen := stadium3d.NewGenerator(cfg.Layout)
	gen.Logger = logger

	mesh, err := gen.Mesh()
	if err != nil {
		return err
	}

	textures, err := stadium3d.LoadTextureSet(stadium3d.FileTextureProvider{Root: opt.textures}, cfg.Textures)
	if err != nil {
		return err
	}

	if opt.export != "" {
		if err := (stadium3d.GLTFExporter{Path: opt.export}).Submit(mesh, textures); err != nil {
			return fmt.Errorf("export %s: %w", opt.export, err)
		}
		logger.Info("stadium exported", "file", opt.export, "triangles", mesh.TriangleCount(), "extent", mesh.Dimensions.Max())
	}

	if !opt.view {
		return nil
	}

	game := ebiten3d.NewGame(gen, textures)
	game.Logger = logger

	if opt.watch {
		watcher, err := stadium3d.WatchLayoutFile(opt.config, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		game.Layouts = watcher.Changes()
	}

	return ebiten3d.Run(game, "stadium3d - "+cfg.Layout.Name)

}

func main() {

	opt, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(usageExitCode(err))
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(opt, logger); err != nil {
		logger.Error("stadium failed", "err", err)
		os.Exit(1)
	}

}
