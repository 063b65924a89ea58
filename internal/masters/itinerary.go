package masters

import (
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func itineraryStatus(i *models.ItineraryInfo) *models.Status { return &i.Status }

// ItinerarySchema describes the itinerary-info snippets. Its list filters on
// category instead of status.
func ItinerarySchema(env Env) *crud.Schema[models.ItineraryInfo] {
	return &crud.Schema[models.ItineraryInfo]{
		Title:    "Itinerary Info",
		Entity:   "itinerary info",
		IDPrefix: "ITN",
		GetID:    func(i models.ItineraryInfo) string { return i.ID },
		SetID:    func(i *models.ItineraryInfo, id string) { i.ID = id },
		Defaults: func() models.ItineraryInfo {
			return models.ItineraryInfo{Category: models.ItineraryCategories[0], Status: models.StatusActive}
		},
		Fields: []crud.Field[models.ItineraryInfo]{
			crud.Text("title", "Title", func(i *models.ItineraryInfo) *string { return &i.Title }).Require(),
			refField(env.Refs, refdata.Destinations, "destination", "Destination",
				func(i *models.ItineraryInfo) *string { return &i.DestinationID }).Require(),
			crud.Enum("category", "Category", func(i *models.ItineraryInfo) *string { return &i.Category },
				models.ItineraryCategories...),
			crud.Text("description", "Description", func(i *models.ItineraryInfo) *string { return &i.Description }),
			statusField(itineraryStatus),
		},
		Filter: crud.Filter[models.ItineraryInfo]{
			Fields: []func(models.ItineraryInfo) string{
				func(i models.ItineraryInfo) string { return i.Title },
				func(i models.ItineraryInfo) string { return i.Description },
			},
			Category: func(i models.ItineraryInfo) string { return i.Category },
		},
		Columns: []crud.Column[models.ItineraryInfo]{
			{Title: "ID", Value: func(i models.ItineraryInfo) string { return i.ID }},
			{Title: "Title", Value: func(i models.ItineraryInfo) string { return i.Title }},
			{Title: "Destination", Value: func(i models.ItineraryInfo) string { return i.DestinationName }},
			{Title: "Category", Value: func(i models.ItineraryInfo) string { return i.Category }},
			statusColumn(itineraryStatus),
		},
		Resolve: func(i *models.ItineraryInfo, refs crud.Lookup) {
			i.DestinationName = resolveName(refs, refdata.Destinations, i.DestinationID)
		},
	}
}

func NewItinerary(seed []models.ItineraryInfo, env Env) *crud.Controller[models.ItineraryInfo] {
	store := crud.NewStore(func(i models.ItineraryInfo) string { return i.ID }, seed...)
	return crud.NewController(ItinerarySchema(env), store, env.Refs, env.logger())
}
