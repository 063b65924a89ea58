package masters

import (
	"strconv"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
)

func vehicleStatus(v *models.VehicleType) *models.Status { return &v.Status }

func VehicleTypeSchema() *crud.Schema[models.VehicleType] {
	return &crud.Schema[models.VehicleType]{
		Title:    "Vehicle Types",
		Entity:   "vehicle type",
		IDPrefix: "VEH",
		GetID:    func(v models.VehicleType) string { return v.ID },
		SetID:    func(v *models.VehicleType, id string) { v.ID = id },
		Defaults: func() models.VehicleType { return models.VehicleType{Status: models.StatusActive} },
		Fields: []crud.Field[models.VehicleType]{
			crud.Text("name", "Name", func(v *models.VehicleType) *string { return &v.Name }).Require(),
			crud.Int("capacity", "Capacity", func(v *models.VehicleType) *int { return &v.Capacity }),
			crud.Text("description", "Description", func(v *models.VehicleType) *string { return &v.Description }),
			statusField(vehicleStatus),
		},
		Filter: crud.Filter[models.VehicleType]{
			Fields: []func(models.VehicleType) string{
				func(v models.VehicleType) string { return v.Name },
				func(v models.VehicleType) string { return v.Description },
			},
			Category: statusOf(vehicleStatus),
		},
		Columns: []crud.Column[models.VehicleType]{
			{Title: "ID", Value: func(v models.VehicleType) string { return v.ID }},
			{Title: "Name", Value: func(v models.VehicleType) string { return v.Name }},
			{Title: "Capacity", Value: func(v models.VehicleType) string { return strconv.Itoa(v.Capacity) }},
			{Title: "Description", Value: func(v models.VehicleType) string { return v.Description }},
			statusColumn(vehicleStatus),
		},
	}
}

func NewVehicleTypes(seed []models.VehicleType, env Env) *crud.Controller[models.VehicleType] {
	store := crud.NewStore(func(v models.VehicleType) string { return v.ID }, seed...)
	return crud.NewController(VehicleTypeSchema(), store, env.Refs, env.logger())
}
