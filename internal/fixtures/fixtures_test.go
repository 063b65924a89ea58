package fixtures

import (
	"testing"
	"testing/fstest"

	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedFixtures(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, s.PaymentTypes)
	assert.Equal(t, models.PaymentType{ID: "PT-1", Name: "Cash", Description: "Paid at the office counter", Status: models.StatusActive}, s.PaymentTypes[0])

	for _, list := range []string{refdata.Destinations, refdata.Countries, refdata.VehicleTypes, refdata.TransferTypes, refdata.Monuments, refdata.Activities} {
		assert.NotEmpty(t, s.Reference[list], list)
	}

	assert.NotEmpty(t, s.Itinerary)
	assert.NotEmpty(t, s.Packages)
	assert.NotEmpty(t, s.ProposalSettings)
	assert.NotEmpty(t, s.ProposalTemplates)
	assert.NotEmpty(t, s.States)
	assert.NotEmpty(t, s.VehicleTypes)
	assert.Equal(t, "2026-10-01", s.TrainTariffs[0].FromDate)
	assert.Equal(t, "All", s.TransportationTariffs[1].Destination)

	require.Len(t, s.Roles, 2)
	require.Len(t, s.Roles[0].Children, 2)
	assert.Equal(t, "Sales Executive", s.Roles[0].Children[0].Children[0].Name)
}

func TestLoad_ForeignKeysResolve(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	refs, err := refdata.New(s.Reference)
	require.NoError(t, err)

	for _, tr := range s.Trains {
		name, ok := refs.Lookup(refdata.Destinations, tr.DestinationID)
		require.True(t, ok, tr.ID)
		assert.Equal(t, name, tr.DestinationName, tr.ID)
	}
	for _, st := range s.States {
		name, ok := refs.Lookup(refdata.Countries, st.CountryID)
		require.True(t, ok, st.ID)
		assert.Equal(t, name, st.CountryName, st.ID)
	}
	trains := map[string]bool{}
	for _, tr := range s.Trains {
		trains[tr.ID] = true
	}
	for _, tt := range s.TrainTariffs {
		assert.True(t, trains[tt.TrainID], "tariff %s has no parent", tt.ID)
	}
}

func TestLoadFS_RejectsUnknownKeys(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range []string{"reference.yaml", "itinerary.yaml", "packages.yaml", "proposal_settings.yaml",
		"proposal_templates.yaml", "roles.yaml", "states.yaml", "trains.yaml", "transportation.yaml", "vehicle_types.yaml"} {
		fsys[name] = &fstest.MapFile{Data: []byte("")}
	}
	fsys["payment_types.yaml"] = &fstest.MapFile{Data: []byte("- {id: PT-1, name: Cash, colour: red}\n")}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment_types.yaml")
}

func TestLoadFS_MissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference.yaml")
}
