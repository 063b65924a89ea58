// Package masters declares the back-office screens. Each flat screen is a
// crud.Schema over one record type driven by a crud.Controller; trains and
// transportation add a scoped rate-sheet controller as their detail view;
// roles are a tree and get their own Session implementation.
package masters
