package core

import (
	"context"
	"time"

	"github.com/automoto/kartrace-mp/network"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Registration announces the server to clients on the local network until
// stopped.
type Registration struct {
	lanPort  int
	interval time.Duration
	beacon   network.Beacon
	server   *Server
	cancel   context.CancelFunc
}

// NewRegistration prepares the announcement of a server listening on
// gamePort.
func NewRegistration(server *Server, gamePort, lanPort int, interval time.Duration) *Registration {
	return &Registration{
		lanPort:  lanPort,
		interval: interval,
		beacon: network.Beacon{
			Name:       server.opts.Name,
			Port:       gamePort,
			MaxPlayers: server.opts.MaxPlayers,
			Version:    server.opts.Version,
		},
		server: server,
	}
}

func (r *Registration) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	if err := network.AnnounceLAN(ctx, r.lanPort, r.interval, r.beacon, r.server.PlayerCount); err != nil {
		cancel()
		return errors.Wrap(err, "announce on LAN")
	}
	r.cancel = cancel
	r.server.log.Info("announcing on LAN",
		zap.String("name", r.beacon.Name),
		zap.Int("lanPort", r.lanPort))
	return nil
}

func (r *Registration) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}
