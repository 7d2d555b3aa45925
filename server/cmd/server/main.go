package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/logging"
	"github.com/automoto/kartrace-mp/server/core"
	"github.com/automoto/kartrace-mp/shared/protocol"
	"github.com/automoto/kartrace-mp/shared/trackdata"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := cli.NewApp()
	app.Name = "kartrace-server"
	app.Usage = "authoritative kart race server"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "port", Value: cfg.Network.DefaultPort, Usage: "Server port"},
		cli.IntFlag{Name: "tickrate", Value: cfg.Network.TickRate, Usage: "Simulation ticks per second"},
		cli.StringFlag{Name: "name", Value: cfg.Network.ServerName, Usage: "Server display name"},
		cli.StringFlag{Name: "version", Value: cfg.Network.Version, Usage: "Required client version (empty = accept any)"},
		cli.IntFlag{Name: "max-players", Value: cfg.Network.MaxPlayers, Usage: "Karts allowed in the race"},
		cli.StringFlag{Name: "assets", Value: "assets", Usage: "Asset directory holding tracks/*.tmx"},
		cli.StringFlag{Name: "track", Value: cfg.Race.DefaultTrack, Usage: "Track to race on"},
		cli.BoolFlag{Name: "no-lan", Usage: "Do not announce the server on the local network"},
		cli.StringFlag{Name: "log", Value: "", Usage: "Log file, empty for stderr only"},
		cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	level := zapcore.InfoLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	logging.Init(c.String("log"), level)
	defer logging.Sync()
	logger := logging.Named("server")

	if err := protocol.RegisterComponents(); err != nil {
		return errors.Wrap(err, "register components")
	}

	tracks, names, err := trackdata.LoadAllTracks(os.DirFS(c.String("assets")), "tracks")
	if err != nil {
		return errors.Wrap(err, "load tracks")
	}
	track, ok := tracks[c.String("track")]
	if !ok {
		return errors.Errorf("unknown track %q, have %v", c.String("track"), names)
	}

	port := c.Int("port")
	server := core.NewServer(core.Options{
		Name:       c.String("name"),
		Version:    c.String("version"),
		TickRate:   c.Int("tickrate"),
		MaxPlayers: c.Int("max-players"),
		Track:      track,
		Logger:     logger,
	})

	if !c.Bool("no-lan") {
		interval := time.Duration(cfg.Network.LANInterval * float64(time.Second))
		reg := core.NewRegistration(server, port, cfg.Network.LANPort, interval)
		if err := reg.Start(); err != nil {
			logger.Warn("LAN announcement disabled", zap.Error(err))
		} else {
			defer reg.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down server")
		server.Stop()
		logging.Sync()
		os.Exit(0)
	}()

	logger.Info("starting server",
		zap.String("name", c.String("name")),
		zap.Int("port", port),
		zap.Int("tickRate", c.Int("tickrate")),
		zap.String("track", track.Name),
		zap.String("version", c.String("version")))
	return server.Start(uint(port))
}
