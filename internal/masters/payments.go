package masters

import (
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
)

func paymentStatus(p *models.PaymentType) *models.Status { return &p.Status }

func PaymentTypeSchema() *crud.Schema[models.PaymentType] {
	return &crud.Schema[models.PaymentType]{
		Title:    "Payment Types",
		Entity:   "payment type",
		IDPrefix: "PT",
		GetID:    func(p models.PaymentType) string { return p.ID },
		SetID:    func(p *models.PaymentType, id string) { p.ID = id },
		Defaults: func() models.PaymentType { return models.PaymentType{Status: models.StatusActive} },
		Fields: []crud.Field[models.PaymentType]{
			crud.Text("name", "Name", func(p *models.PaymentType) *string { return &p.Name }).Require(),
			crud.Text("description", "Description", func(p *models.PaymentType) *string { return &p.Description }),
			statusField(paymentStatus),
		},
		Filter: crud.Filter[models.PaymentType]{
			Fields: []func(models.PaymentType) string{
				func(p models.PaymentType) string { return p.Name },
				func(p models.PaymentType) string { return p.Description },
			},
			Category: statusOf(paymentStatus),
		},
		Columns: []crud.Column[models.PaymentType]{
			{Title: "ID", Value: func(p models.PaymentType) string { return p.ID }},
			{Title: "Name", Value: func(p models.PaymentType) string { return p.Name }},
			{Title: "Description", Value: func(p models.PaymentType) string { return p.Description }},
			statusColumn(paymentStatus),
		},
	}
}

func NewPaymentTypes(seed []models.PaymentType, env Env) *crud.Controller[models.PaymentType] {
	store := crud.NewStore(func(p models.PaymentType) string { return p.ID }, seed...)
	return crud.NewController(PaymentTypeSchema(), store, env.Refs, env.logger())
}
