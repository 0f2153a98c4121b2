// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqyaml

import (
	"testing"

	"github.com/dacolabs/bqschema/bqschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTranslate(t *testing.T) {
	schema := &bqschema.TableSchema{Fields: []*bqschema.FieldSchema{
		{Name: "id", Type: bqschema.Integer, Mode: bqschema.Required, Description: "Key"},
		{Name: "tags", Type: bqschema.String, Mode: bqschema.Repeated},
	}}

	translator := &Translator{}
	output, err := translator.Translate("events", schema)
	require.NoError(t, err)

	assert.Equal(t, `fields:
  - name: id
    type: INTEGER
    mode: REQUIRED
    description: Key
  - name: tags
    type: STRING
    mode: REPEATED
`, string(output))

	var decoded bqschema.TableSchema
	require.NoError(t, yaml.Unmarshal(output, &decoded))
	assert.Equal(t, schema, &decoded)
}
