package network

import (
	"context"
	"encoding/json"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/automoto/kartrace-mp/logging"
	"github.com/pkg/errors"
)

// Beacon is the announcement a race server broadcasts on the local network.
type Beacon struct {
	Name       string `json:"name"`
	Port       int    `json:"port"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
}

type lanRecord struct {
	info     ServerInfo
	lastSeen time.Time
}

// LANRegistry remembers servers heard on the local network and forgets them
// once they stop announcing for longer than the TTL.
type LANRegistry struct {
	mu      sync.RWMutex
	servers map[string]*lanRecord
	ttl     time.Duration
	now     func() time.Time
}

func NewLANRegistry(ttl time.Duration) *LANRegistry {
	return &LANRegistry{
		servers: make(map[string]*lanRecord),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Observe records a beacon received from host. Beacons from servers that
// require another version are ignored.
func (r *LANRegistry) Observe(host string, b Beacon, version string) bool {
	if (b.Version != "" && b.Version != version) || b.Port <= 0 {
		return false
	}
	info := ServerInfo{Name: b.Name, Host: host, Port: b.Port}
	if info.Name == "" {
		info.Name = info.Address()
	}

	r.mu.Lock()
	r.servers[info.Address()] = &lanRecord{info: info, lastSeen: r.now()}
	r.mu.Unlock()
	return true
}

// List returns the live servers ordered by name, dropping expired ones.
func (r *LANRegistry) List() []ServerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	result := make([]ServerInfo, 0, len(r.servers))
	for addr, rec := range r.servers {
		if now.Sub(rec.lastSeen) >= r.ttl {
			delete(r.servers, addr)
			continue
		}
		result = append(result, rec.info)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Address() < result[j].Address()
	})
	return result
}

// ListenLAN collects beacons on port into reg until ctx is cancelled.
func ListenLAN(ctx context.Context, port int, version string, reg *LANRegistry) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: port})
	if err != nil {
		return errors.Wrapf(err, "listen lan port %d", port)
	}
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		buf := make([]byte, 1024)
		for {
			n, from, err := conn.ReadFromUDP(buf)
			if err != nil {
				if ctx.Err() == nil {
					logging.Log.Warnf("[lan] read error: %v", err)
				}
				return
			}
			var b Beacon
			if err := json.Unmarshal(buf[:n], &b); err != nil {
				logging.Log.Debugf("[lan] bad beacon from %s: %v", from, err)
				continue
			}
			reg.Observe(from.IP.String(), b, version)
		}
	}()
	return nil
}

// AnnounceLAN broadcasts beacon on port every interval until ctx is
// cancelled. players is polled for each announcement.
func AnnounceLAN(ctx context.Context, port int, interval time.Duration, beacon Beacon, players func() int) error {
	conn, err := net.Dial("udp4", net.JoinHostPort("255.255.255.255", strconv.Itoa(port)))
	if err != nil {
		return errors.Wrap(err, "dial lan broadcast")
	}

	go func() {
		defer conn.Close()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			b := beacon
			b.Players = players()
			payload, err := json.Marshal(b)
			if err == nil {
				if _, err := conn.Write(payload); err != nil {
					logging.Log.Debugf("[lan] announce failed: %v", err)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return nil
}
