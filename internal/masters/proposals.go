package masters

import (
	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
)

func settingStatus(s *models.ProposalSetting) *models.Status   { return &s.Status }
func templateStatus(t *models.ProposalTemplate) *models.Status { return &t.Status }

// ProposalSettingSchema describes the branding printed on proposals.
func ProposalSettingSchema(env Env) *crud.Schema[models.ProposalSetting] {
	text := func(name, label string, ref func(*models.ProposalSetting) *string) crud.Field[models.ProposalSetting] {
		return crud.Text(name, label, ref)
	}
	return &crud.Schema[models.ProposalSetting]{
		Title:    "Proposal Settings",
		Entity:   "proposal setting",
		IDPrefix: "PS",
		GetID:    func(s models.ProposalSetting) string { return s.ID },
		SetID:    func(s *models.ProposalSetting, id string) { s.ID = id },
		Defaults: func() models.ProposalSetting { return models.ProposalSetting{Status: models.StatusActive} },
		Fields: []crud.Field[models.ProposalSetting]{
			text("companyName", "Company Name", func(s *models.ProposalSetting) *string { return &s.CompanyName }).Require(),
			imageField(env.picker(), "logo", "Logo", func(s *models.ProposalSetting) *string { return &s.Logo }),
			text("primaryColor", "Primary Color", func(s *models.ProposalSetting) *string { return &s.PrimaryColor }),
			text("secondaryColor", "Secondary Color", func(s *models.ProposalSetting) *string { return &s.SecondaryColor }),
			text("email", "Email", func(s *models.ProposalSetting) *string { return &s.Email }),
			text("phone", "Phone", func(s *models.ProposalSetting) *string { return &s.Phone }),
			text("website", "Website", func(s *models.ProposalSetting) *string { return &s.Website }),
			text("footerText", "Footer Text", func(s *models.ProposalSetting) *string { return &s.FooterText }),
			statusField(settingStatus),
		},
		Filter: crud.Filter[models.ProposalSetting]{
			Fields: []func(models.ProposalSetting) string{
				func(s models.ProposalSetting) string { return s.CompanyName },
				func(s models.ProposalSetting) string { return s.Email },
			},
			Category: statusOf(settingStatus),
		},
		Columns: []crud.Column[models.ProposalSetting]{
			{Title: "ID", Value: func(s models.ProposalSetting) string { return s.ID }},
			{Title: "Company", Value: func(s models.ProposalSetting) string { return s.CompanyName }},
			{Title: "Email", Value: func(s models.ProposalSetting) string { return s.Email }},
			{Title: "Phone", Value: func(s models.ProposalSetting) string { return s.Phone }},
			statusColumn(settingStatus),
		},
	}
}

func NewProposalSettings(seed []models.ProposalSetting, env Env) *crud.Controller[models.ProposalSetting] {
	store := crud.NewStore(func(s models.ProposalSetting) string { return s.ID }, seed...)
	return crud.NewController(ProposalSettingSchema(env), store, env.Refs, env.logger())
}

// ProposalTemplateSchema describes printable templates. Body text is kept
// verbatim.
func ProposalTemplateSchema(env Env) *crud.Schema[models.ProposalTemplate] {
	return &crud.Schema[models.ProposalTemplate]{
		Title:    "Proposal Templates",
		Entity:   "proposal template",
		IDPrefix: "TPL",
		GetID:    func(t models.ProposalTemplate) string { return t.ID },
		SetID:    func(t *models.ProposalTemplate, id string) { t.ID = id },
		Defaults: func() models.ProposalTemplate {
			return models.ProposalTemplate{TemplateType: models.TemplateProposal, Status: models.StatusActive}
		},
		Fields: []crud.Field[models.ProposalTemplate]{
			crud.Text("name", "Name", func(t *models.ProposalTemplate) *string { return &t.Name }).Require(),
			crud.Enum("templateType", "Template Type", func(t *models.ProposalTemplate) *models.TemplateType { return &t.TemplateType },
				models.TemplateTypes...).Require(),
			crud.Text("header", "Header", func(t *models.ProposalTemplate) *string { return &t.Header }),
			crud.Text("body", "Body", func(t *models.ProposalTemplate) *string { return &t.Body }),
			crud.Text("footer", "Footer", func(t *models.ProposalTemplate) *string { return &t.Footer }),
			imageField(env.picker(), "coverImage", "Cover Image", func(t *models.ProposalTemplate) *string { return &t.CoverImage }),
			crud.Bool("isDefault", "Default", func(t *models.ProposalTemplate) *bool { return &t.IsDefault }),
			statusField(templateStatus),
		},
		Filter: crud.Filter[models.ProposalTemplate]{
			Fields: []func(models.ProposalTemplate) string{
				func(t models.ProposalTemplate) string { return t.Name },
				func(t models.ProposalTemplate) string { return t.Body },
			},
			Category: statusOf(templateStatus),
		},
		Columns: []crud.Column[models.ProposalTemplate]{
			{Title: "ID", Value: func(t models.ProposalTemplate) string { return t.ID }},
			{Title: "Name", Value: func(t models.ProposalTemplate) string { return t.Name }},
			{Title: "Type", Value: func(t models.ProposalTemplate) string { return string(t.TemplateType) }},
			{Title: "Default", Value: func(t models.ProposalTemplate) string {
				if t.IsDefault {
					return "yes"
				}
				return ""
			}},
			statusColumn(templateStatus),
		},
	}
}

func NewProposalTemplates(seed []models.ProposalTemplate, env Env) *crud.Controller[models.ProposalTemplate] {
	store := crud.NewStore(func(t models.ProposalTemplate) string { return t.ID }, seed...)
	return crud.NewController(ProposalTemplateSchema(env), store, env.Refs, env.logger())
}
