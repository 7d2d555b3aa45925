package network

import (
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ServerInfo identifies a race server to join.
type ServerInfo struct {
	Name string
	Host string
	Port int
}

// Address returns host:port for dialing.
func (s ServerInfo) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ParseAddress parses a user-entered "host[:port]" address. defaultPort is
// used when no port is given.
func ParseAddress(input string, defaultPort int) (ServerInfo, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return ServerInfo{}, errors.New("empty server address")
	}

	host, portStr, err := net.SplitHostPort(input)
	if err != nil {
		// No port, or an IPv6 literal without brackets and port.
		host, portStr = strings.Trim(input, "[]"), strconv.Itoa(defaultPort)
	}
	if host == "" {
		return ServerInfo{}, errors.Errorf("missing host in %q", input)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return ServerInfo{}, errors.Errorf("invalid port in %q", input)
	}

	return ServerInfo{Name: input, Host: host, Port: port}, nil
}
