package models

// SchemaVersion is the version of the database schema written by this release.
const SchemaVersion = "1"

// MetaKeySchemaVersion is the meta key storing the schema version.
const MetaKeySchemaVersion = "schema_version"

// Meta is a key/value pair describing the database itself.
type Meta struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// TableName keeps the table name singular.
func (Meta) TableName() string {
	return "meta"
}
