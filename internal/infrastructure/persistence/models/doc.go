// Package models contains the persistence representations of the domain
// aggregates. Domain entities never reach GORM directly; repositories
// map them through these models so schema concerns (column types,
// indexes, conflict targets) stay out of the domain layer.
package models
