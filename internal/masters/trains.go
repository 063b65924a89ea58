package masters

import (
	"context"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func trainStatus(t *models.Train) *models.Status             { return &t.Status }
func trainTariffStatus(t *models.TrainTariff) *models.Status { return &t.Status }

func TrainSchema(env Env) *crud.Schema[models.Train] {
	return &crud.Schema[models.Train]{
		Title:    "Trains",
		Entity:   "train",
		IDPrefix: "TR",
		GetID:    func(t models.Train) string { return t.ID },
		SetID:    func(t *models.Train, id string) { t.ID = id },
		Defaults: func() models.Train { return models.Train{Status: models.StatusActive} },
		Fields: []crud.Field[models.Train]{
			crud.Text("name", "Name", func(t *models.Train) *string { return &t.Name }).Require(),
			crud.Text("number", "Number", func(t *models.Train) *string { return &t.Number }).Require(),
			refField(env.Refs, refdata.Destinations, "destination", "Destination",
				func(t *models.Train) *string { return &t.DestinationID }).Require(),
			crud.Text("description", "Description", func(t *models.Train) *string { return &t.Description }),
			statusField(trainStatus),
		},
		Filter: crud.Filter[models.Train]{
			Fields: []func(models.Train) string{
				func(t models.Train) string { return t.Name },
				func(t models.Train) string { return t.Number },
			},
			Category: statusOf(trainStatus),
		},
		Columns: []crud.Column[models.Train]{
			{Title: "ID", Value: func(t models.Train) string { return t.ID }},
			{Title: "Name", Value: func(t models.Train) string { return t.Name }},
			{Title: "Number", Value: func(t models.Train) string { return t.Number }},
			{Title: "Destination", Value: func(t models.Train) string { return t.DestinationName }},
			statusColumn(trainStatus),
		},
		Resolve: func(t *models.Train, refs crud.Lookup) {
			t.DestinationName = resolveName(refs, refdata.Destinations, t.DestinationID)
		},
	}
}

// TrainTariffSchema describes one row of a train's rate sheet.
func TrainTariffSchema(train models.Train) *crud.Schema[models.TrainTariff] {
	return &crud.Schema[models.TrainTariff]{
		Title:    "Tariffs: " + train.Name,
		Entity:   "train tariff",
		IDPrefix: "TRT",
		GetID:    func(t models.TrainTariff) string { return t.ID },
		SetID:    func(t *models.TrainTariff, id string) { t.ID = id },
		Defaults: func() models.TrainTariff { return models.TrainTariff{Status: models.StatusActive} },
		Fields: []crud.Field[models.TrainTariff]{
			crud.Enum("class", "Class", func(t *models.TrainTariff) *string { return &t.Class }, models.TrainClasses...).Require(),
			crud.Date("fromDate", "From", func(t *models.TrainTariff) *string { return &t.FromDate }),
			crud.Date("toDate", "To", func(t *models.TrainTariff) *string { return &t.ToDate }),
			crud.Money("price", "Price", func(t *models.TrainTariff) *float64 { return &t.Price }),
			statusField(trainTariffStatus),
		},
		Filter: crud.Filter[models.TrainTariff]{
			Fields: []func(models.TrainTariff) string{
				func(t models.TrainTariff) string { return t.Class },
			},
			Category: statusOf(trainTariffStatus),
		},
		Columns: []crud.Column[models.TrainTariff]{
			{Title: "ID", Value: func(t models.TrainTariff) string { return t.ID }},
			{Title: "Class", Value: func(t models.TrainTariff) string { return t.Class }},
			{Title: "From", Value: func(t models.TrainTariff) string { return t.FromDate }},
			{Title: "To", Value: func(t models.TrainTariff) string { return t.ToDate }},
			{Title: "Price", Value: func(t models.TrainTariff) string { return money(t.Price) }},
			statusColumn(trainTariffStatus),
		},
	}
}

// Trains is the train screen plus the store of every train's tariffs.
type Trains struct {
	*crud.Controller[models.Train]
	Tariffs *crud.Store[models.TrainTariff]
}

// NewTrains wires the train list and its rate sheets. Deleting a train
// deletes its tariffs.
func NewTrains(trains []models.Train, tariffs []models.TrainTariff, env Env) *Trains {
	logger := env.logger()
	tariffStore := crud.NewStore(func(t models.TrainTariff) string { return t.ID }, tariffs...)

	schema := TrainSchema(env)
	schema.DetailName = "tariffs"
	schema.Detail = func(train models.Train) crud.Session {
		return crud.NewController(TrainTariffSchema(train), tariffStore, env.Refs, logger).
			WithScope(
				func(t models.TrainTariff) bool { return t.TrainID == train.ID },
				func(t *models.TrainTariff) { t.TrainID = train.ID },
			)
	}
	schema.OnDelete = func(ctx context.Context, id string) {
		n := tariffStore.RemoveWhere(func(t models.TrainTariff) bool { return t.TrainID == id })
		if n > 0 {
			logger.Info(ctx, "tariffs deleted with train", "train", id, "count", n)
		}
	}

	store := crud.NewStore(func(t models.Train) string { return t.ID }, trains...)
	return &Trains{
		Controller: crud.NewController(schema, store, env.Refs, logger),
		Tariffs:    tariffStore,
	}
}
