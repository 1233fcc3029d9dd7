// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package configx

import (
	"bytes"
	"context"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/ory/jsonschema/v3"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/clamp/errorx"
	"github.com/clinia/clamp/loggerx"
)

const delimiter = "."

// Provider holds the merged configuration. Sources are applied in this order, later
// ones winning: schema defaults, base values, config files, environment, flags, forced
// values. A flag left at its default only applies when no other source set the key.
type Provider struct {
	*koanf.Koanf

	schema    []byte
	validator *jsonschema.Schema

	files             []string
	flags             *pflag.FlagSet
	envPrefix         string
	disableEnvLoading bool
	skipValidation    bool
	baseValues        []tuple
	forcedValues      []tuple
	logger            *loggerx.Logger
}

// New loads and validates the configuration described by schema, a JSON schema whose
// properties declare every accepted key. Environment variables and flags that do not
// map to a declared key are ignored.
func New(ctx context.Context, schema []byte, modifiers ...OptionModifier) (*Provider, error) {
	validator, err := compileSchema(ctx, schema)
	if err != nil {
		return nil, errorx.InternalErrorf("unable to compile the configuration schema").WithOriginalError(err)
	}

	p := &Provider{
		schema:    schema,
		validator: validator,
	}
	for _, m := range modifiers {
		m(p)
	}

	k, err := p.load()
	if err != nil {
		return nil, err
	}

	if !p.skipValidation {
		if err := p.validate(k); err != nil {
			return nil, err
		}
	}

	p.Koanf = k
	if p.logger != nil {
		p.logger.Debug(ctx, "configuration loaded",
			attribute.StringSlice("keys", k.Keys()),
			attribute.StringSlice("files", p.files),
		)
	}
	return p, nil
}

func (p *Provider) load() (*koanf.Koanf, error) {
	k := koanf.New(delimiter)

	if err := k.Load(confmap.Provider(schemaDefaults(p.schema), delimiter), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	base := make(map[string]interface{}, len(p.baseValues))
	for _, t := range p.baseValues {
		base[t.Key] = t.Value
	}
	if err := k.Load(confmap.Provider(base, delimiter), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, f := range p.files {
		if err := k.Load(file.Provider(f), json.Parser()); err != nil {
			return nil, errorx.InvalidArgumentErrorf("unable to load configuration file %q", f).WithOriginalError(err)
		}
	}

	if !p.disableEnvLoading && p.envPrefix != "" {
		if err := k.Load(env.Provider(p.envPrefix, delimiter, p.envKey), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if p.flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(p.flags, delimiter, k, p.flagKey), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	for _, t := range p.forcedValues {
		if err := k.Set(t.Key, t.Value); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return k, nil
}

// envKey maps PREFIX_LOG_LEVEL to log.level.
func (p *Provider) envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, p.envPrefix))
	key = strings.ReplaceAll(key, "_", delimiter)
	if !declares(p.schema, key) {
		return ""
	}
	return key
}

// flagKey maps --log-level to log.level.
func (p *Provider) flagKey(f *pflag.Flag) (string, interface{}) {
	key := strings.ReplaceAll(f.Name, "-", delimiter)
	if !declares(p.schema, key) {
		return "", nil
	}
	return key, posflag.FlagVal(p.flags, f)
}

func (p *Provider) validate(k *koanf.Koanf) error {
	out, err := k.Marshal(json.Parser())
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.validator.Validate(bytes.NewReader(out)); err != nil {
		return errorx.InvalidArgumentErrorf("the configuration is invalid: %s", err).WithOriginalError(err)
	}
	return nil
}
