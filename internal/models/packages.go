package models

// ServiceType decides which reference list a package's services come from.
type ServiceType string

const (
	ServiceTypeMonument ServiceType = "Monument"
	ServiceTypeActivity ServiceType = "Activity"
)

// PackageService is one monument or activity included in a package.
type PackageService struct {
	ServiceID string `json:"serviceId" yaml:"serviceId"`
	Name      string `json:"name" yaml:"name"`
}

// MonumentPackage bundles monuments or activities of one destination into a
// sellable package. Services are owned by the package.
type MonumentPackage struct {
	ID              string           `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	DestinationID   string           `json:"destinationId" yaml:"destinationId"`
	DestinationName string           `json:"destinationName" yaml:"destinationName"`
	ServiceType     ServiceType      `json:"serviceType" yaml:"serviceType"`
	Services        []PackageService `json:"services" yaml:"services"`
	Price           float64          `json:"price" yaml:"price"`
	Validity        string           `json:"validity" yaml:"validity"`
	Description     string           `json:"description" yaml:"description"`
	Image           string           `json:"image" yaml:"image"`
	Status          Status           `json:"status" yaml:"status"`
}

// Clone returns a copy that shares no slices with p.
func (p MonumentPackage) Clone() MonumentPackage {
	if p.Services != nil {
		p.Services = append([]PackageService(nil), p.Services...)
	}
	return p
}

// ServiceIDs returns the ids of the included services in order.
func (p MonumentPackage) ServiceIDs() []string {
	ids := make([]string, len(p.Services))
	for i, s := range p.Services {
		ids[i] = s.ServiceID
	}
	return ids
}
