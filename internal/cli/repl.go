package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tripdesk/internal/crud"
)

const rootHelp = "Available commands: screens, open <screen>, exit"

const listHelp = `Available commands:
  (l)ist                 show the records
  search [text]          keyword search; no text clears it
  filter <value|All>     category filter
  add | edit <id>        open the record dialog
  delete <id>            delete after confirmation
  rates <id>             open the rate sheet (trains, transport)
  expand | collapse <id> open or close a tree node (roles)
  back | exit`

const dialogHelp = `Available commands:
  fields                 show the draft
  set <field> [value]    set a field; without a value you are prompted
  write <field>          enter multi-line text
  options <field>        list accepted values
  save | cancel`

// disabled are the spreadsheet and audit commands the console does not offer.
var disabled = map[string]bool{"import": true, "export": true, "download-format": true, "logs": true}

func splitCommand(line string) (string, string) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) fail(err error) {
	var ve *crud.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(a.out, "cannot save, required fields missing: %s\n", strings.Join(ve.Missing, ", "))
		return
	}
	fmt.Fprintf(a.out, "error: %v\n", err)
}

// root is the top-level loop.
func (a *App) root(ctx context.Context) {
	a.println("Welcome to the back office (type 'help' for commands)")
	for {
		fmt.Fprint(a.out, "tripdesk> ")
		line, err := readLine(a.reader)
		if err != nil {
			a.println("Bye!")
			return
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "help":
			a.println(rootHelp)
		case "screens", "ls":
			a.listScreens()
		case "open":
			if arg == "" {
				a.println("Usage: open <screen>")
				continue
			}
			s, ok := a.screens.Get(strings.ToLower(arg))
			if !ok {
				a.println("Unknown screen:", arg)
				continue
			}
			if !a.screen(ctx, strings.ToLower(arg), s) {
				a.println("Bye!")
				return
			}
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

func (a *App) listScreens() {
	screens := a.screens.Screens()
	rows := make([][]string, len(screens))
	for i, s := range screens {
		rows[i] = []string{s.Key, s.Session.Title()}
	}
	renderTable(a.out, []string{"Screen", "Title"}, rows, termWidth())
}

// active returns the session commands go to (the open rate sheet, if any)
// and the prompt path.
func active(key string, top crud.Session) (crud.Session, string) {
	s, path := top, key
	if top.View() == crud.ViewDetail && top.Detail() != nil {
		s, path = top.Detail(), key+"/"+top.DetailName()
	}
	if s.View() == crud.ViewEditing {
		path += " (editing)"
	}
	return s, path
}

// screen runs the loop of one screen. It returns false when the console
// should stop.
func (a *App) screen(ctx context.Context, key string, top crud.Session) bool {
	a.renderList(top)
	for {
		s, path := active(key, top)
		fmt.Fprintf(a.out, "%s> ", path)
		line, err := readLine(a.reader)
		if err != nil {
			return false
		}
		cmd, arg := splitCommand(line)

		switch {
		case cmd == "":
			continue
		case cmd == "exit" || cmd == "quit":
			return false
		case s.View() == crud.ViewEditing:
			a.dialog(ctx, s, cmd, arg)
		case cmd == "back":
			if s == top {
				return true
			}
			if err := top.CloseDetail(); err != nil {
				a.fail(err)
				continue
			}
			a.renderList(top)
		default:
			a.listCommand(ctx, s, cmd, arg)
		}
	}
}

func (a *App) listCommand(ctx context.Context, s crud.Session, cmd, arg string) {
	switch cmd {
	case "help":
		a.println(listHelp)

	case "l", "list":
		a.renderList(s)

	case "search":
		if err := s.Search(arg); err != nil {
			a.fail(err)
			return
		}
		a.renderList(s)

	case "filter":
		if arg == "" {
			a.println("Usage: filter <value|All>")
			return
		}
		if err := s.FilterBy(arg); err != nil {
			a.fail(err)
			return
		}
		a.renderList(s)

	case "add":
		if err := s.BeginCreate(); err != nil {
			a.fail(err)
			return
		}
		a.renderFields(s)

	case "edit":
		if arg == "" {
			a.println("Usage: edit <id>")
			return
		}
		if err := s.BeginEdit(arg); err != nil {
			a.fail(err)
			return
		}
		a.renderFields(s)

	case "delete":
		if arg == "" {
			a.println("Usage: delete <id>")
			return
		}
		confirm := crud.ConfirmFunc(func(prompt string) bool { return Confirm(a.reader, prompt, a.out) })
		ok, err := s.Delete(ctx, arg, confirm)
		switch {
		case err != nil:
			a.fail(err)
		case ok:
			a.println("Deleted", arg)
			a.renderList(s)
		default:
			a.println("Nothing deleted")
		}

	case "rates", s.DetailName():
		if s.DetailName() == "" {
			a.println("This screen has no rate sheet")
			return
		}
		if arg == "" {
			a.println("Usage: rates <id>")
			return
		}
		d, err := s.OpenDetail(arg)
		if err != nil {
			a.fail(err)
			return
		}
		a.renderList(d)

	case "expand", "collapse":
		tree, ok := s.(crud.Expander)
		if !ok {
			a.println("This screen is not a tree")
			return
		}
		if arg == "" {
			a.println("Usage:", cmd, "<id>")
			return
		}
		toggle := tree.Expand
		if cmd == "collapse" {
			toggle = tree.Collapse
		}
		if err := toggle(arg); err != nil {
			a.fail(err)
			return
		}
		a.renderList(s)

	default:
		if disabled[cmd] {
			a.println(cmd + ": not available")
			return
		}
		a.println("Unknown command:", cmd)
	}
}

func (a *App) dialog(ctx context.Context, s crud.Session, cmd, arg string) {
	switch cmd {
	case "help":
		a.println(dialogHelp)

	case "fields", "show":
		a.renderFields(s)

	case "set", "write":
		name, _ := splitCommand(arg)
		if name == "" {
			a.println("Usage:", cmd, "<field> [value]")
			return
		}
		_, value, _ := strings.Cut(arg, " ")
		value = strings.TrimSpace(value)

		var err error
		switch {
		case cmd == "write":
			value, err = GetMultiline(a.reader, "Enter "+name, a.out)
		case value == "":
			value, err = GetSimpleText(a.reader, "Enter "+name+" (empty to clear)", a.out)
		}
		if err != nil {
			a.fail(err)
			return
		}
		if err := s.SetField(ctx, name, value); err != nil {
			a.fail(err)
			return
		}
		for _, f := range s.Fields() {
			if strings.EqualFold(f.Name, name) {
				fmt.Fprintf(a.out, "%s = %s\n", f.Name, clip(f.Value, 80))
			}
		}

	case "options":
		if arg == "" {
			a.println("Usage: options <field>")
			return
		}
		opts, err := s.FieldOptions(arg)
		if err != nil {
			a.fail(err)
			return
		}
		a.renderOptions(opts)

	case "save":
		id, err := s.Save(ctx)
		if err != nil {
			a.fail(err)
			return
		}
		a.println("Saved", id)
		a.renderList(s)

	case "cancel":
		if err := s.Cancel(); err != nil {
			a.fail(err)
			return
		}
		a.renderList(s)

	case "back":
		a.println("Save or cancel the open record first")

	default:
		a.println("Unknown command:", cmd)
	}
}
