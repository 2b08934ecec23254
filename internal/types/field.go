package types

// Column represents a validated column reference.
// This is exported from the internal package so renderers can use it,
// but external users cannot import this package.
type Column struct {
	Name  string // The column name (required)
	Table string // Optional table/alias prefix
}

// TableValidator is a function that validates table names and aliases.
type TableValidator func(string) error

// Global table validator - set by the main package.
var validateTable TableValidator

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// GetTable returns the table/alias prefix.
func (c Column) GetTable() string {
	return c.Table
}

// WithTable sets the table/alias prefix for a column with validation.
func (c Column) WithTable(tableOrAlias string) Column {
	if validateTable != nil {
		if err := validateTable(tableOrAlias); err != nil {
			panic(err)
		}
	}

	c.Table = tableOrAlias
	return c
}

// SetTableValidator sets the global table validator function.
// This is called by the main package during initialization.
func SetTableValidator(validator TableValidator) {
	validateTable = validator
}
