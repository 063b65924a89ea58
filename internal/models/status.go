// Package models defines the master-data records edited by the back-office
// screens.
package models

// Status is the lifecycle flag every record carries.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Statuses lists the valid Status values in display order.
var Statuses = []Status{StatusActive, StatusInactive}
