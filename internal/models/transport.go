package models

// Train is a rail service sold as part of itineraries.
type Train struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Number          string `json:"number" yaml:"number"`
	DestinationID   string `json:"destinationId" yaml:"destinationId"`
	DestinationName string `json:"destinationName" yaml:"destinationName"`
	Description     string `json:"description" yaml:"description"`
	Status          Status `json:"status" yaml:"status"`
}

// TrainClasses are the travel classes a train tariff can price.
var TrainClasses = []string{"1A", "2A", "3A", "SL", "CC", "EC"}

// TrainTariff is one rate-sheet row of a train.
type TrainTariff struct {
	ID       string  `json:"id" yaml:"id"`
	TrainID  string  `json:"trainId" yaml:"trainId"`
	Class    string  `json:"class" yaml:"class"`
	FromDate string  `json:"fromDate" yaml:"fromDate"`
	ToDate   string  `json:"toDate" yaml:"toDate"`
	Price    float64 `json:"price" yaml:"price"`
	Status   Status  `json:"status" yaml:"status"`
}

// Transportation is a transfer product: a vehicle type on a transfer route at
// a destination.
type Transportation struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	VehicleTypeID    string `json:"vehicleTypeId" yaml:"vehicleTypeId"`
	VehicleTypeName  string `json:"vehicleTypeName" yaml:"vehicleTypeName"`
	TransferTypeID   string `json:"transferTypeId" yaml:"transferTypeId"`
	TransferTypeName string `json:"transferTypeName" yaml:"transferTypeName"`
	DestinationID    string `json:"destinationId" yaml:"destinationId"`
	DestinationName  string `json:"destinationName" yaml:"destinationName"`
	Description      string `json:"description" yaml:"description"`
	Status           Status `json:"status" yaml:"status"`
}

// TransportationTariff is one rate-sheet row of a transportation. Destination
// is a destination id or All.
type TransportationTariff struct {
	ID               string  `json:"id" yaml:"id"`
	TransportationID string  `json:"transportationId" yaml:"transportationId"`
	Destination      string  `json:"destination" yaml:"destination"`
	DestinationName  string  `json:"destinationName" yaml:"destinationName"`
	FromDate         string  `json:"fromDate" yaml:"fromDate"`
	ToDate           string  `json:"toDate" yaml:"toDate"`
	Price            float64 `json:"price" yaml:"price"`
	Status           Status  `json:"status" yaml:"status"`
}
