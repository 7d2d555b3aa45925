package protocol

import (
	"github.com/automoto/kartrace-mp/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/pkg/errors"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetKart    uint = 10
	SyncIDNetControl uint = 11
	SyncIDNetRace    uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetKart uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Kart pose is interpolated for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetKart,
		netcomponents.NetKartData{},
		netcomponents.NetKart,
		esync.WithInterpFn(InterpIDNetKart, netcomponents.LerpNetKart),
	); err != nil {
		return errors.Wrap(err, "register NetKart")
	}

	// Control and race state: no interpolation (discrete)
	if err := esync.RegisterComponent(
		SyncIDNetControl,
		netcomponents.NetControlData{},
		netcomponents.NetControl,
	); err != nil {
		return errors.Wrap(err, "register NetControl")
	}

	if err := esync.RegisterComponent(
		SyncIDNetRace,
		netcomponents.NetRaceData{},
		netcomponents.NetRace,
	); err != nil {
		return errors.Wrap(err, "register NetRace")
	}

	return nil
}
