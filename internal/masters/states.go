package masters

import (
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func stateStatus(s *models.State) *models.Status { return &s.Status }

func StateSchema(env Env) *crud.Schema[models.State] {
	return &crud.Schema[models.State]{
		Title:    "States",
		Entity:   "state",
		IDPrefix: "ST",
		GetID:    func(s models.State) string { return s.ID },
		SetID:    func(s *models.State, id string) { s.ID = id },
		Defaults: func() models.State { return models.State{Status: models.StatusActive} },
		Fields: []crud.Field[models.State]{
			crud.Text("name", "Name", func(s *models.State) *string { return &s.Name }).Require(),
			crud.Text("code", "Code", func(s *models.State) *string { return &s.Code }),
			refField(env.Refs, refdata.Countries, "country", "Country",
				func(s *models.State) *string { return &s.CountryID }).Require(),
			statusField(stateStatus),
		},
		Filter: crud.Filter[models.State]{
			Fields: []func(models.State) string{
				func(s models.State) string { return s.Name },
				func(s models.State) string { return s.Code },
			},
			Category: statusOf(stateStatus),
		},
		Columns: []crud.Column[models.State]{
			{Title: "ID", Value: func(s models.State) string { return s.ID }},
			{Title: "Name", Value: func(s models.State) string { return s.Name }},
			{Title: "Code", Value: func(s models.State) string { return s.Code }},
			{Title: "Country", Value: func(s models.State) string { return s.CountryName }},
			statusColumn(stateStatus),
		},
		Resolve: func(s *models.State, refs crud.Lookup) {
			s.CountryName = resolveName(refs, refdata.Countries, s.CountryID)
		},
	}
}

func NewStates(seed []models.State, env Env) *crud.Controller[models.State] {
	store := crud.NewStore(func(s models.State) string { return s.ID }, seed...)
	return crud.NewController(StateSchema(env), store, env.Refs, env.logger())
}
