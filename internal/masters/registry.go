package masters

import (
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/fixtures"
)

// Screen keys.
const (
	KeyItinerary         = "itinerary"
	KeyPackages          = "packages"
	KeyPayments          = "payments"
	KeyProposalSettings  = "proposal-settings"
	KeyProposalTemplates = "proposal-templates"
	KeyRoles             = "roles"
	KeyStates            = "states"
	KeyTrains            = "trains"
	KeyTransport         = "transport"
	KeyVehicles          = "vehicles"
)

// Screen is one entry of the console menu.
type Screen struct {
	Key     string
	Session crud.Session
}

// Registry holds every screen, each built once so its state survives leaving
// and reopening it.
type Registry struct {
	screens []Screen
}

// NewRegistry builds all screens from seed.
func NewRegistry(seed *fixtures.Seed, env Env) *Registry {
	return &Registry{screens: []Screen{
		{KeyItinerary, NewItinerary(seed.Itinerary, env)},
		{KeyPackages, NewPackages(seed.Packages, env)},
		{KeyPayments, NewPaymentTypes(seed.PaymentTypes, env)},
		{KeyProposalSettings, NewProposalSettings(seed.ProposalSettings, env)},
		{KeyProposalTemplates, NewProposalTemplates(seed.ProposalTemplates, env)},
		{KeyRoles, NewRoles(seed.Roles, env)},
		{KeyStates, NewStates(seed.States, env)},
		{KeyTrains, NewTrains(seed.Trains, seed.TrainTariffs, env)},
		{KeyTransport, NewTransport(seed.Transportation, seed.TransportationTariffs, env)},
		{KeyVehicles, NewVehicleTypes(seed.VehicleTypes, env)},
	}}
}

// Screens returns the menu in display order.
func (r *Registry) Screens() []Screen {
	return append([]Screen(nil), r.screens...)
}

// Get returns the screen with key.
func (r *Registry) Get(key string) (crud.Session, bool) {
	for _, s := range r.screens {
		if s.Key == key {
			return s.Session, true
		}
	}
	return nil, false
}
