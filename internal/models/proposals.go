package models

// ProposalSetting holds the branding printed on customer proposals.
type ProposalSetting struct {
	ID             string `json:"id" yaml:"id"`
	CompanyName    string `json:"companyName" yaml:"companyName"`
	Logo           string `json:"logo" yaml:"logo"`
	PrimaryColor   string `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor"`
	Email          string `json:"email" yaml:"email"`
	Phone          string `json:"phone" yaml:"phone"`
	Website        string `json:"website" yaml:"website"`
	FooterText     string `json:"footerText" yaml:"footerText"`
	Status         Status `json:"status" yaml:"status"`
}

// TemplateType classifies printable templates.
type TemplateType string

const (
	TemplateProposal  TemplateType = "Proposal"
	TemplateItinerary TemplateType = "Itinerary"
	TemplateVoucher   TemplateType = "Voucher"
	TemplateInvoice   TemplateType = "Invoice"
)

// TemplateTypes lists the template kinds in display order.
var TemplateTypes = []TemplateType{TemplateProposal, TemplateItinerary, TemplateVoucher, TemplateInvoice}

// ProposalTemplate is a printable layout. Body text is stored as entered.
type ProposalTemplate struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	TemplateType TemplateType `json:"templateType" yaml:"templateType"`
	Header       string       `json:"header" yaml:"header"`
	Body         string       `json:"body" yaml:"body"`
	Footer       string       `json:"footer" yaml:"footer"`
	CoverImage   string       `json:"coverImage" yaml:"coverImage"`
	IsDefault    bool         `json:"isDefault" yaml:"isDefault"`
	Status       Status       `json:"status" yaml:"status"`
}
