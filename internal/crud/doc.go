// Package crud implements the master-detail pattern every back-office screen
// is built from.
//
// A Store keeps the committed records in order. A Filter turns the list query
// (keyword plus optional category) into the visible rows. A Form describes the
// editable fields of a record, and a Draft stages one record while its dialog
// is open. Controller ties them into the screen state machine:
//
//	List --add/edit--> Editing --save ok/cancel--> List
//	List --delete (confirmed)--> List
//	List --open detail--> Detail --close--> List
//
// Controllers are not safe for concurrent use; each screen owns its own.
package crud
