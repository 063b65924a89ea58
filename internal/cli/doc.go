// Package cli is the interactive back-office console.
//
// The root prompt lists and opens screens. Inside a screen the prompt accepts
// list commands (list, search, filter, add, edit, delete, rates, expand,
// collapse, back); while a record is open it accepts dialog commands (fields,
// set, write, options, save, cancel). A rate sheet opened with rates behaves
// like a screen of its own until back closes it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
