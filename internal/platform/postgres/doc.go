// Package postgres implements the store interfaces using a PostgreSQL
// database accessed through database/sql over the pgx stdlib driver.
package postgres
