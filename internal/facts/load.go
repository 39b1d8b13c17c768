package facts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var tableSchemaJSON []byte

const tableSchemaURL = "schema://fact-table.json"

var (
	tableSchemaOnce sync.Once
	tableSchema     *jsonschema.Schema
	tableSchemaErr  error
)

// LoadFile reads a JSON fact table from path and checks it against the
// table schema. The returned Table still has to go through Build.
func LoadFile(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read fact table: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and schema-checks a JSON fact table.
func Parse(raw []byte) (Table, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Table{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledTableSchema()
	if err != nil {
		return Table{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Table{}, fmt.Errorf("fact table schema validation failed: %w", err)
	}

	var t Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return Table{}, fmt.Errorf("decode fact table: %w", err)
	}
	return t, nil
}

// compiledTableSchema compiles the embedded schema once.
func compiledTableSchema() (*jsonschema.Schema, error) {
	tableSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(tableSchemaJSON, &def); err != nil {
			tableSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(tableSchemaURL, def); err != nil {
			tableSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		tableSchema, tableSchemaErr = c.Compile(tableSchemaURL)
		if tableSchemaErr != nil {
			tableSchemaErr = fmt.Errorf("compile: %w", tableSchemaErr)
		}
	})
	return tableSchema, tableSchemaErr
}
