package config

import (
	"os"

	"cricketscrapper/cricket"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Schemas returns the page schemas to run with: the defaults, overlaid with
// SchemaFile when one is configured. The result is always validated.
func (c Config) Schemas() (cricket.Schemas, error) {
	if c.SchemaFile == "" {
		schemas := cricket.DefaultSchemas()
		return schemas, schemas.Validate()
	}
	return LoadSchemaFile(c.SchemaFile, cricket.DefaultSchemas())
}

// LoadSchemaFile overlays the YAML file at path onto base. Keys absent from
// the file keep their base value; lists are replaced whole.
func LoadSchemaFile(path string, base cricket.Schemas) (cricket.Schemas, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cricket.Schemas{}, errors.Wrapf(err, "read schema file %s", path)
	}
	return ParseSchemas(raw, base)
}

// ParseSchemas is LoadSchemaFile on in-memory YAML.
func ParseSchemas(raw []byte, base cricket.Schemas) (cricket.Schemas, error) {
	out := base
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return cricket.Schemas{}, errors.Wrap(err, "decode schema file")
	}
	if err := out.Validate(); err != nil {
		return cricket.Schemas{}, err
	}
	return out, nil
}
