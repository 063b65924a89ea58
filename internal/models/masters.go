package models

// PaymentType is a way a customer can settle an invoice.
type PaymentType struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
}

// VehicleType is a class of vehicle offered for transfers.
type VehicleType struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
}

// State is a first-level administrative region of a country.
type State struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Code        string `json:"code" yaml:"code"`
	CountryID   string `json:"countryId" yaml:"countryId"`
	CountryName string `json:"countryName" yaml:"countryName"`
	Status      Status `json:"status" yaml:"status"`
}

// ItineraryInfo is a reusable text snippet inserted into itineraries, such as
// inclusions or travel tips for a destination.
type ItineraryInfo struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	DestinationID   string `json:"destinationId" yaml:"destinationId"`
	DestinationName string `json:"destinationName" yaml:"destinationName"`
	Category        string `json:"category" yaml:"category"`
	Description     string `json:"description" yaml:"description"`
	Status          Status `json:"status" yaml:"status"`
}

// ItineraryCategories are the snippet kinds offered in the itinerary screen.
var ItineraryCategories = []string{"Inclusion", "Exclusion", "Highlight", "Travel Tip", "Terms"}
