package crud

import "context"

// View is the state of a screen.
type View int

const (
	ViewList View = iota
	ViewEditing
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewEditing:
		return "editing"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Confirmer is the yes/no gate asked before a delete.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Session is the type-erased surface of a screen, driven by the console.
type Session interface {
	Title() string
	View() View
	Query() Query

	Headers() []string
	Rows() [][]string

	Search(keyword string) error
	FilterBy(category string) error

	BeginCreate() error
	BeginEdit(id string) error
	Fields() []FieldInfo
	FieldOptions(name string) ([]Option, error)
	SetField(ctx context.Context, name, value string) error
	Save(ctx context.Context) (string, error)
	Cancel() error

	Delete(ctx context.Context, id string, confirm Confirmer) (bool, error)

	// DetailName is empty for screens without a secondary view.
	DetailName() string
	OpenDetail(id string) (Session, error)
	Detail() Session
	CloseDetail() error
}

// Expander is implemented by tree screens.
type Expander interface {
	Expand(id string) error
	Collapse(id string) error
}
