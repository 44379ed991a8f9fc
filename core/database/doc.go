// Package database manages the GORM/MySQL connection to the local mirror
// schema and provides a small inspector for verifying that the given DDL has
// been applied before a sync is attempted.
package database
