// Package models defines the org chart records persisted in the database,
// the read views served by the API and the optional-field inputs accepted
// on create and update.
package models
