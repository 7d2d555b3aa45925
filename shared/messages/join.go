package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request a kart in the race.
type JoinRequest struct {
	Version        string
	PlayerName     string
	Track          string // Requested track, empty for the server's choice
	ReconnectToken string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	NetworkID      esync.NetworkId
	WorldKartID    int
	ReconnectToken string
	ServerName     string
	TickRate       int
	Track          string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
