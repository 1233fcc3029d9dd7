// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package configx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ory/jsonschema/v3"
)

func newCompiler(schema []byte) (string, *jsonschema.Compiler, error) {
	id := gjson.GetBytes(schema, "$id").String()
	if id == "" {
		id = fmt.Sprintf("%s.json", uuid.Must(uuid.NewRandom()).String())
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(id, bytes.NewBuffer(schema)); err != nil {
		return "", nil, errors.WithStack(err)
	}

	return id, compiler, nil
}

func compileSchema(ctx context.Context, schema []byte) (*jsonschema.Schema, error) {
	id, compiler, err := newCompiler(schema)
	if err != nil {
		return nil, err
	}

	s, err := compiler.Compile(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}

// schemaDefaults collects the "default" annotation of every declared property, keyed by
// its dotted path.
func schemaDefaults(schema []byte) map[string]interface{} {
	defaults := map[string]interface{}{}
	collectDefaults(gjson.ParseBytes(schema), "", defaults)
	return defaults
}

func collectDefaults(node gjson.Result, prefix string, into map[string]interface{}) {
	node.Get("properties").ForEach(func(name, prop gjson.Result) bool {
		key := name.String()
		if prefix != "" {
			key = prefix + delimiter + key
		}
		if def := prop.Get("default"); def.Exists() {
			into[key] = def.Value()
		}
		collectDefaults(prop, key, into)
		return true
	})
}

// declares reports whether the dotted key is a property of the schema, e.g. log.level
// is declared by {"properties": {"log": {"properties": {"level": {}}}}}.
func declares(schema []byte, key string) bool {
	if key == "" {
		return false
	}
	path := "properties." + strings.ReplaceAll(gjsonEscape(key), ".", ".properties.")
	return gjson.GetBytes(schema, path).Exists()
}

func gjsonEscape(key string) string {
	r := strings.NewReplacer("*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)
	return r.Replace(key)
}
