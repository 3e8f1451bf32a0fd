package source

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/iconpack/pkg/model"
)

// maxReportedViolations caps how many schema violations are quoted in an error.
const maxReportedViolations = 3

//go:embed iconset.schema.json
var iconSetSchemaJSON []byte

var iconSetSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(iconSetSchemaJSON))
})

// ParseIconSet decodes a JSON bundle. Required fields (prefix, info.name,
// info.total, icons and each icon body) are checked against the embedded
// schema; optional fields default and unknown fields are ignored. The
// declared total is not compared with the number of icons.
func ParseIconSet(data []byte) (*model.IconSet, error) {
	schema, err := iconSetSchema()
	if err != nil {
		return nil, fmt.Errorf("load icon set schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}

	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSource, describeViolations(result.Errors()))
	}

	var set model.IconSet

	err = json.Unmarshal(data, &set)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}

	if set.Icons == nil {
		set.Icons = map[string]model.IconEntry{}
	}

	return &set, nil
}

func describeViolations(violations []gojsonschema.ResultError) string {
	parts := make([]string, 0, maxReportedViolations)

	for i, v := range violations {
		if i == maxReportedViolations {
			parts = append(parts, fmt.Sprintf("and %d more", len(violations)-i))

			break
		}

		parts = append(parts, v.String())
	}

	return strings.Join(parts, "; ")
}
