/*
Package sqlset reads datasets from tables of SQL databases. SQLite3
files and PostgreSQL databases are supported through their drivers.

A table is expected to have a column for every feature and for the
class described by the metadata, named after them.
*/
package sqlset
