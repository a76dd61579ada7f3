package dumpsql

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/dumpsql/domain/model"
)

// Default configuration values.
const (
	// DefaultDelimiter is the statement delimiter used when none is configured
	DefaultDelimiter = ";"
	// DefaultBatchSize is the number of statements per transaction
	DefaultBatchSize = 100
)

// Config controls parsing, filtering and execution of a SQL script.
// A Config value is immutable per call: entrypoints read it and never
// modify it. Use NewConfig for defaults and the With* methods to
// derive adjusted copies.
type Config struct {
	// Encoding selects the source text encoding.
	Encoding model.Encoding
	// Delimiter is the literal statement delimiter.
	Delimiter string
	// BatchSize bounds the number of statements per transaction.
	BatchSize int
	// SkipErrors tolerates per-statement failures instead of aborting
	// the containing batch.
	SkipErrors bool
	// SchemaOnly keeps only schema-definition statements.
	SchemaOnly bool
	// DataOnly keeps only data-manipulation statements.
	DataOnly bool
	// TableFilter is an allow-list of table names. Empty means no
	// restriction.
	TableFilter []string
	// ExcludeTables is a deny-list of table names.
	ExcludeTables []string
	// CreateTables enables CREATE TABLE statements.
	CreateTables bool
	// InsertData enables INSERT statements.
	InsertData bool
	// Indexes enables CREATE INDEX statements.
	Indexes bool
	// Constraints enables ALTER TABLE statements.
	Constraints bool
	// Dialect tags the source dialect for fallback translation.
	Dialect model.Dialect
}

// NewConfig returns a Config with all defaults applied: UTF-8 encoding,
// ";" delimiter, batch size 100, every operation enabled, no filters,
// native dialect.
func NewConfig() Config {
	return Config{
		Encoding:     model.EncodingUTF8,
		Delimiter:    DefaultDelimiter,
		BatchSize:    DefaultBatchSize,
		CreateTables: true,
		InsertData:   true,
		Indexes:      true,
		Constraints:  true,
		Dialect:      model.DialectSQLite,
	}
}

// WithEncoding returns a copy of the config with the given encoding.
func (c Config) WithEncoding(encoding model.Encoding) Config {
	c.Encoding = encoding
	return c
}

// WithDelimiter returns a copy of the config with the given delimiter.
func (c Config) WithDelimiter(delimiter string) Config {
	c.Delimiter = delimiter
	return c
}

// WithBatchSize returns a copy of the config with the given batch size.
func (c Config) WithBatchSize(size int) Config {
	c.BatchSize = size
	return c
}

// WithSkipErrors returns a copy of the config with skip-errors mode set.
func (c Config) WithSkipErrors(skip bool) Config {
	c.SkipErrors = skip
	return c
}

// WithSchemaOnly returns a copy of the config keeping only DDL statements.
func (c Config) WithSchemaOnly(schemaOnly bool) Config {
	c.SchemaOnly = schemaOnly
	return c
}

// WithDataOnly returns a copy of the config keeping only DML statements.
func (c Config) WithDataOnly(dataOnly bool) Config {
	c.DataOnly = dataOnly
	return c
}

// WithTableFilter returns a copy of the config restricted to the given tables.
func (c Config) WithTableFilter(tables ...string) Config {
	c.TableFilter = tables
	return c
}

// WithExcludeTables returns a copy of the config excluding the given tables.
func (c Config) WithExcludeTables(tables ...string) Config {
	c.ExcludeTables = tables
	return c
}

// WithCreateTables returns a copy of the config with CREATE TABLE toggled.
func (c Config) WithCreateTables(enabled bool) Config {
	c.CreateTables = enabled
	return c
}

// WithInsertData returns a copy of the config with INSERT toggled.
func (c Config) WithInsertData(enabled bool) Config {
	c.InsertData = enabled
	return c
}

// WithIndexes returns a copy of the config with CREATE INDEX toggled.
func (c Config) WithIndexes(enabled bool) Config {
	c.Indexes = enabled
	return c
}

// WithConstraints returns a copy of the config with ALTER TABLE toggled.
func (c Config) WithConstraints(enabled bool) Config {
	c.Constraints = enabled
	return c
}

// WithDialect returns a copy of the config with the given source dialect.
func (c Config) WithDialect(dialect model.Dialect) Config {
	c.Dialect = dialect
	return c
}

// normalize applies defaults to zero-valued fields so that a literal
// Config{} behaves like NewConfig() where a zero value is unusable.
func (c Config) normalize() Config {
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// configFile is the YAML representation of an ingest profile.
type configFile struct {
	Encoding      string   `yaml:"encoding"`
	Delimiter     string   `yaml:"delimiter"`
	BatchSize     int      `yaml:"batch_size"`
	SkipErrors    bool     `yaml:"skip_errors"`
	SchemaOnly    bool     `yaml:"schema_only"`
	DataOnly      bool     `yaml:"data_only"`
	TableFilter   []string `yaml:"table_filter"`
	ExcludeTables []string `yaml:"exclude_tables"`
	CreateTables  *bool    `yaml:"create_tables"`
	InsertData    *bool    `yaml:"insert_data"`
	Indexes       *bool    `yaml:"indexes"`
	Constraints   *bool    `yaml:"constraints"`
	Dialect       string   `yaml:"dialect"`
}

// LoadConfigFile reads an ingest profile from a YAML file. Omitted
// fields keep their NewConfig defaults.
//
// Example profile:
//
//	encoding: utf8
//	delimiter: ";"
//	batch_size: 500
//	skip_errors: true
//	exclude_tables: [audit_log]
//	dialect: mysql
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return parseConfig(data)
}

// parseConfig converts YAML profile bytes into a Config.
func parseConfig(data []byte) (Config, error) {
	var raw configFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := NewConfig()

	encoding, err := model.ParseEncoding(raw.Encoding)
	if err != nil {
		return Config{}, fmt.Errorf("%w: encoding %q", ErrInvalidConfig, raw.Encoding)
	}
	cfg.Encoding = encoding

	dialect, err := model.ParseDialect(raw.Dialect)
	if err != nil {
		return Config{}, fmt.Errorf("%w: dialect %q", ErrInvalidConfig, raw.Dialect)
	}
	cfg.Dialect = dialect

	if raw.Delimiter != "" {
		cfg.Delimiter = raw.Delimiter
	}
	if raw.BatchSize > 0 {
		cfg.BatchSize = raw.BatchSize
	}
	cfg.SkipErrors = raw.SkipErrors
	cfg.SchemaOnly = raw.SchemaOnly
	cfg.DataOnly = raw.DataOnly
	cfg.TableFilter = raw.TableFilter
	cfg.ExcludeTables = raw.ExcludeTables

	if raw.CreateTables != nil {
		cfg.CreateTables = *raw.CreateTables
	}
	if raw.InsertData != nil {
		cfg.InsertData = *raw.InsertData
	}
	if raw.Indexes != nil {
		cfg.Indexes = *raw.Indexes
	}
	if raw.Constraints != nil {
		cfg.Constraints = *raw.Constraints
	}

	return cfg, nil
}
