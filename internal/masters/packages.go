package masters

import (
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func packageStatus(p *models.MonumentPackage) *models.Status { return &p.Status }

// serviceList is the reference list the package's services come from.
func serviceList(t models.ServiceType) string {
	switch t {
	case models.ServiceTypeMonument:
		return refdata.Monuments
	case models.ServiceTypeActivity:
		return refdata.Activities
	default:
		return ""
	}
}

// PackageSchema describes monument and activity packages. The selectable
// services depend on both the service type and the destination, so changing
// either clears the services already picked.
func PackageSchema(env Env) *crud.Schema[models.MonumentPackage] {
	refs := env.Refs

	services := func(p *models.MonumentPackage) []crud.Option {
		list := serviceList(p.ServiceType)
		if list == "" || p.DestinationID == "" {
			return nil
		}
		return refs.OptionsFor(list, p.DestinationID)
	}

	return &crud.Schema[models.MonumentPackage]{
		Title:    "Monument Packages",
		Entity:   "package",
		IDPrefix: "PKG",
		GetID:    func(p models.MonumentPackage) string { return p.ID },
		SetID:    func(p *models.MonumentPackage, id string) { p.ID = id },
		Defaults: func() models.MonumentPackage {
			return models.MonumentPackage{Services: []models.PackageService{}, Status: models.StatusActive}
		},
		Clone: models.MonumentPackage.Clone,
		Fields: []crud.Field[models.MonumentPackage]{
			crud.Text("name", "Name", func(p *models.MonumentPackage) *string { return &p.Name }).Require(),
			refField(refs, refdata.Destinations, "destination", "Destination",
				func(p *models.MonumentPackage) *string { return &p.DestinationID }).Require().Resetting("services"),
			crud.Enum("serviceType", "Service Type", func(p *models.MonumentPackage) *models.ServiceType { return &p.ServiceType },
				models.ServiceTypeMonument, models.ServiceTypeActivity).Require().Resetting("services"),
			crud.Multi("services", "Services",
				func(p *models.MonumentPackage) []string { return p.ServiceIDs() },
				func(p *models.MonumentPackage, picked []crud.Option) {
					p.Services = make([]models.PackageService, len(picked))
					for i, o := range picked {
						p.Services[i] = models.PackageService{ServiceID: o.ID, Name: o.Name}
					}
				},
				services),
			crud.Money("price", "Price", func(p *models.MonumentPackage) *float64 { return &p.Price }),
			crud.Text("validity", "Validity", func(p *models.MonumentPackage) *string { return &p.Validity }),
			crud.Text("description", "Description", func(p *models.MonumentPackage) *string { return &p.Description }),
			imageField(env.picker(), "image", "Image", func(p *models.MonumentPackage) *string { return &p.Image }),
			statusField(packageStatus),
		},
		Filter: crud.Filter[models.MonumentPackage]{
			Fields: []func(models.MonumentPackage) string{
				func(p models.MonumentPackage) string { return p.Name },
				func(p models.MonumentPackage) string { return p.Description },
			},
			Category: statusOf(packageStatus),
		},
		Columns: []crud.Column[models.MonumentPackage]{
			{Title: "ID", Value: func(p models.MonumentPackage) string { return p.ID }},
			{Title: "Name", Value: func(p models.MonumentPackage) string { return p.Name }},
			{Title: "Destination", Value: func(p models.MonumentPackage) string { return p.DestinationName }},
			{Title: "Type", Value: func(p models.MonumentPackage) string { return string(p.ServiceType) }},
			{Title: "Services", Value: func(p models.MonumentPackage) string {
				names := make([]string, len(p.Services))
				for i, s := range p.Services {
					names[i] = s.Name
				}
				return strings.Join(names, ", ")
			}},
			{Title: "Price", Value: func(p models.MonumentPackage) string { return money(p.Price) }},
			statusColumn(packageStatus),
		},
		Resolve: func(p *models.MonumentPackage, refs crud.Lookup) {
			p.DestinationName = resolveName(refs, refdata.Destinations, p.DestinationID)
			list := serviceList(p.ServiceType)
			for i := range p.Services {
				if name := resolveName(refs, list, p.Services[i].ServiceID); name != "" {
					p.Services[i].Name = name
				}
			}
		},
		Finalize: func(p *models.MonumentPackage) {
			if p.Services == nil {
				p.Services = []models.PackageService{}
			}
		},
	}
}

func NewPackages(seed []models.MonumentPackage, env Env) *crud.Controller[models.MonumentPackage] {
	store := crud.NewStore(func(p models.MonumentPackage) string { return p.ID }, seed...)
	return crud.NewController(PackageSchema(env), store, env.Refs, env.logger())
}
