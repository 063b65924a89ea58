// Package fixtures holds the seed data the console starts from. Every run
// begins from the same embedded documents; nothing is written back.
package fixtures

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Seed is the decoded fixture set.
type Seed struct {
	Reference             map[string][]refdata.Entry
	Itinerary             []models.ItineraryInfo
	Packages              []models.MonumentPackage
	PaymentTypes          []models.PaymentType
	ProposalSettings      []models.ProposalSetting
	ProposalTemplates     []models.ProposalTemplate
	Roles                 []models.RoleNode
	States                []models.State
	Trains                []models.Train
	TrainTariffs          []models.TrainTariff
	Transportation        []models.Transportation
	TransportationTariffs []models.TransportationTariff
	VehicleTypes          []models.VehicleType
}

type trainsDoc struct {
	Trains  []models.Train       `yaml:"trains"`
	Tariffs []models.TrainTariff `yaml:"tariffs"`
}

type transportationDoc struct {
	Transportation []models.Transportation       `yaml:"transportation"`
	Tariffs        []models.TransportationTariff `yaml:"tariffs"`
}

// Load decodes the embedded fixtures.
func Load() (*Seed, error) {
	data, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(data)
}

// LoadFS decodes fixtures from fsys, which must contain the same file names
// as the embedded set. Unknown keys are rejected.
func LoadFS(fsys fs.FS) (*Seed, error) {
	s := &Seed{}
	var trains trainsDoc
	var transport transportationDoc

	files := []struct {
		name string
		into any
	}{
		{"reference.yaml", &s.Reference},
		{"itinerary.yaml", &s.Itinerary},
		{"packages.yaml", &s.Packages},
		{"payment_types.yaml", &s.PaymentTypes},
		{"proposal_settings.yaml", &s.ProposalSettings},
		{"proposal_templates.yaml", &s.ProposalTemplates},
		{"roles.yaml", &s.Roles},
		{"states.yaml", &s.States},
		{"trains.yaml", &trains},
		{"transportation.yaml", &transport},
		{"vehicle_types.yaml", &s.VehicleTypes},
	}

	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.into); err != nil {
			return nil, err
		}
	}

	s.Trains, s.TrainTariffs = trains.Trains, trains.Tariffs
	s.Transportation, s.TransportationTariffs = transport.Transportation, transport.Tariffs
	return s, nil
}

func decodeFile(fsys fs.FS, name string, into any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
