package masters

import (
	"context"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func transportStatus(t *models.Transportation) *models.Status { return &t.Status }
func transportTariffStatus(t *models.TransportationTariff) *models.Status {
	return &t.Status
}

func TransportationSchema(env Env) *crud.Schema[models.Transportation] {
	refs := env.Refs
	return &crud.Schema[models.Transportation]{
		Title:    "Transportation",
		Entity:   "transportation",
		IDPrefix: "TRN",
		GetID:    func(t models.Transportation) string { return t.ID },
		SetID:    func(t *models.Transportation, id string) { t.ID = id },
		Defaults: func() models.Transportation { return models.Transportation{Status: models.StatusActive} },
		Fields: []crud.Field[models.Transportation]{
			crud.Text("name", "Name", func(t *models.Transportation) *string { return &t.Name }).Require(),
			refField(refs, refdata.VehicleTypes, "vehicleType", "Vehicle Type",
				func(t *models.Transportation) *string { return &t.VehicleTypeID }),
			refField(refs, refdata.TransferTypes, "transferType", "Transfer Type",
				func(t *models.Transportation) *string { return &t.TransferTypeID }),
			refField(refs, refdata.Destinations, "destination", "Destination",
				func(t *models.Transportation) *string { return &t.DestinationID }).Require(),
			crud.Text("description", "Description", func(t *models.Transportation) *string { return &t.Description }),
			statusField(transportStatus),
		},
		Filter: crud.Filter[models.Transportation]{
			Fields: []func(models.Transportation) string{
				func(t models.Transportation) string { return t.Name },
				func(t models.Transportation) string { return t.Description },
			},
			Category: statusOf(transportStatus),
		},
		Columns: []crud.Column[models.Transportation]{
			{Title: "ID", Value: func(t models.Transportation) string { return t.ID }},
			{Title: "Name", Value: func(t models.Transportation) string { return t.Name }},
			{Title: "Vehicle", Value: func(t models.Transportation) string { return t.VehicleTypeName }},
			{Title: "Transfer", Value: func(t models.Transportation) string { return t.TransferTypeName }},
			{Title: "Destination", Value: func(t models.Transportation) string { return t.DestinationName }},
			statusColumn(transportStatus),
		},
		Resolve: func(t *models.Transportation, refs crud.Lookup) {
			t.VehicleTypeName = resolveName(refs, refdata.VehicleTypes, t.VehicleTypeID)
			t.TransferTypeName = resolveName(refs, refdata.TransferTypes, t.TransferTypeID)
			t.DestinationName = resolveName(refs, refdata.Destinations, t.DestinationID)
		},
	}
}

// TransportationTariffSchema describes one row of a transportation's rate
// sheet. The destination may be a destination id or All.
func TransportationTariffSchema(parent models.Transportation, env Env) *crud.Schema[models.TransportationTariff] {
	refs := env.Refs
	return &crud.Schema[models.TransportationTariff]{
		Title:    "Tariffs: " + parent.Name,
		Entity:   "transportation tariff",
		IDPrefix: "TRF",
		GetID:    func(t models.TransportationTariff) string { return t.ID },
		SetID:    func(t *models.TransportationTariff, id string) { t.ID = id },
		Defaults: func() models.TransportationTariff {
			return models.TransportationTariff{Status: models.StatusActive}
		},
		Fields: []crud.Field[models.TransportationTariff]{
			crud.Ref("destination", "Destination", func(t *models.TransportationTariff) *string { return &t.Destination },
				func(*models.TransportationTariff) []crud.Option { return refs.Options(refdata.Destinations) }, true).Require(),
			crud.Date("fromDate", "From", func(t *models.TransportationTariff) *string { return &t.FromDate }),
			crud.Date("toDate", "To", func(t *models.TransportationTariff) *string { return &t.ToDate }),
			crud.Money("price", "Price", func(t *models.TransportationTariff) *float64 { return &t.Price }),
			statusField(transportTariffStatus),
		},
		Filter: crud.Filter[models.TransportationTariff]{
			Fields: []func(models.TransportationTariff) string{
				func(t models.TransportationTariff) string { return t.DestinationName },
			},
			Category: statusOf(transportTariffStatus),
		},
		Columns: []crud.Column[models.TransportationTariff]{
			{Title: "ID", Value: func(t models.TransportationTariff) string { return t.ID }},
			{Title: "Destination", Value: func(t models.TransportationTariff) string { return t.DestinationName }},
			{Title: "From", Value: func(t models.TransportationTariff) string { return t.FromDate }},
			{Title: "To", Value: func(t models.TransportationTariff) string { return t.ToDate }},
			{Title: "Price", Value: func(t models.TransportationTariff) string { return money(t.Price) }},
			statusColumn(transportTariffStatus),
		},
		Resolve: func(t *models.TransportationTariff, refs crud.Lookup) {
			if t.Destination == crud.All {
				t.DestinationName = crud.All
				return
			}
			t.DestinationName = resolveName(refs, refdata.Destinations, t.Destination)
		},
	}
}

// Transport is the transportation screen plus the store of every
// transportation's tariffs.
type Transport struct {
	*crud.Controller[models.Transportation]
	Tariffs *crud.Store[models.TransportationTariff]
}

// NewTransport wires the transportation list and its rate sheets. Deleting a
// transportation deletes its tariffs.
func NewTransport(items []models.Transportation, tariffs []models.TransportationTariff, env Env) *Transport {
	logger := env.logger()
	tariffStore := crud.NewStore(func(t models.TransportationTariff) string { return t.ID }, tariffs...)

	schema := TransportationSchema(env)
	schema.DetailName = "tariffs"
	schema.Detail = func(parent models.Transportation) crud.Session {
		return crud.NewController(TransportationTariffSchema(parent, env), tariffStore, env.Refs, logger).
			WithScope(
				func(t models.TransportationTariff) bool { return t.TransportationID == parent.ID },
				func(t *models.TransportationTariff) { t.TransportationID = parent.ID },
			)
	}
	schema.OnDelete = func(ctx context.Context, id string) {
		n := tariffStore.RemoveWhere(func(t models.TransportationTariff) bool { return t.TransportationID == id })
		if n > 0 {
			logger.Info(ctx, "tariffs deleted with transportation", "transportation", id, "count", n)
		}
	}

	store := crud.NewStore(func(t models.Transportation) string { return t.ID }, items...)
	return &Transport{
		Controller: crud.NewController(schema, store, env.Refs, logger),
		Tariffs:    tariffStore,
	}
}
