package cli

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	slogctx "github.com/veqryn/slog-context"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/clamp/castx"
	"github.com/clinia/clamp/configx"
	"github.com/clinia/clamp/loggerx"
	"github.com/clinia/clamp/mathx"
	"github.com/clinia/clamp/slogx"
)

const envPrefix = "CLAMP_"

//go:embed config.schema.json
var configSchema []byte

type invocationIDKey struct{}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clamp VALUE MIN MAX",
		Short: "Clamp VALUE into the range [MIN, MAX]",
		Long: `Clamp VALUE into the range [MIN, MAX].

Operands are converted to numbers first: strings are parsed as numeric literals,
true and false are 1 and 0, null is 0 and undefined is NaN.

Policies:
  strict    fail when MIN is higher than MAX
  lenient   return max(MIN, min(VALUE, MAX)), MIN wins on an inverted range
  optional  like lenient, but a null or undefined bound is not applied

Every flag can also be set with a CLAMP_ environment variable, e.g. CLAMP_LOG_LEVEL.`,
		Example: `  $ clamp 15 0 10
  $ clamp --policy lenient 5 10 0
  $ clamp --policy optional -5 undefined 10`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("policy", schemaDefault("policy"), fmt.Sprintf("clamp policy, one of %v", mathx.Policies))
	flags.String("config", "", "path to a JSON configuration file")
	flags.String("log-level", schemaDefault("log.level"), "log level, one of debug, info, warn, error")
	flags.String("log-format", schemaDefault("log.format"), "log format, one of text, json")

	return cmd
}

// SeparateOperands moves the flags ahead of the operands and puts "--" between them, so
// a negative operand such as -5 is not read as a shorthand flag.
func SeparateOperands(cmd *cobra.Command, args []string) []string {
	var flags, operands []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-") || isNumber(arg):
			operands = append(operands, arg)
		default:
			flags = append(flags, arg)
			name, ok := strings.CutPrefix(arg, "--")
			if !ok || strings.Contains(name, "=") || i+1 == len(args) {
				continue
			}
			if f := cmd.Flags().Lookup(name); f != nil && f.NoOptDefVal == "" {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return append(append(flags, "--"), operands...)
}

func isNumber(arg string) bool {
	return !math.IsNaN(castx.StringToNumber(arg))
}

// schemaDefault reads the default of a dotted key from the configuration schema.
func schemaDefault(key string) string {
	path := "properties." + strings.ReplaceAll(key, ".", ".properties.") + ".default"
	return gjson.GetBytes(configSchema, path).String()
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []configx.OptionModifier{
		configx.WithFlags(cmd.Flags()),
		configx.WithEnvPrefix(envPrefix),
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		opts = append(opts, configx.WithConfigFiles(path))
	}

	cfg, err := configx.New(ctx, configSchema, opts...)
	if err != nil {
		return err
	}

	l, err := loggerx.New(cmd.ErrOrStderr(), loggerx.Config{
		Level:      cfg.String("log.level"),
		Format:     cfg.String("log.format"),
		Extractors: []slogctx.AttrExtractor{slogx.NewContextValueExtractor(invocationIDKey{}, "invocation_id")},
	})
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, invocationIDKey{}, uuid.NewString())
	ctx = slogctx.Append(ctx, "command", cmd.Name())

	policy, err := mathx.ParsePolicy(cfg.String("policy"))
	if err != nil {
		l.WithError(err).Error(ctx, "unable to parse the clamp policy")
		return err
	}

	l = l.WithFields(
		attribute.String("policy", policy.String()),
		attribute.StringSlice("operands", args),
	)

	operands := lo.Map(args, func(arg string, _ int) any {
		return ParseOperand(arg)
	})

	result, err := policy.Clamp(operands[0], operands[1], operands[2])
	if err != nil {
		l.WithError(err).Error(ctx, "unable to clamp the value")
		return err
	}

	l.Debug(ctx, "value clamped", attribute.Float64("result", result))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), castx.FormatNumber(result))
	return err
}
