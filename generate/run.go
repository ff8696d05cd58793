// Package generate implements program subcommands: producing animation
// utilities from theme and checking generated stylesheets.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"animseq/common"
	"animseq/plugin"
	"animseq/state"
	"animseq/theme"
)

// Run is "generate" subcommand action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no theme file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Output.Format
	if cmd.IsSet("to") {
		if env.Format, err = common.ParseOutputFmt(cmd.String("to")); err != nil {
			log.Warn("Unknown output format requested, switching to configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Output.Format))
			env.Format = env.Cfg.Output.Format
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	sources := append(append([]string{}, env.Cfg.Generation.KeyframeSources...), cmd.StringSlice("keyframes")...)

	log.Info("Processing starting", zap.String("theme", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, sources, env, log)
}

// process handles generation independently of CLI framework.
func process(ctx context.Context, src, dst string, sources []string, env *state.LocalEnv, log *zap.Logger) error {
	th, err := theme.Load(src)
	if err != nil {
		return err
	}
	env.Rpt.Store("theme/"+filepath.Base(src), src)

	extra, err := loadKeyframeSources(ctx, sources, env, log)
	if err != nil {
		return err
	}

	settings := plugin.Settings{
		DurationsPath: env.Cfg.Generation.DurationsSource,
		Keyframes:     extra,
		NaturalOrder:  env.Cfg.Generation.DurationOrder == common.KeyOrderNatural,
	}
	if env.Cfg.Generation.TailwindDurations {
		settings.FallbackDurations = theme.TailwindDurations()
	}
	if !th.Has(settings.DurationsPath) && len(settings.FallbackDurations) > 0 {
		log.Debug("Theme has no duration scale, using framework defaults", zap.String("path", settings.DurationsPath))
	}

	reg := plugin.NewSheetRegistry(log)
	res, err := plugin.Apply(th, reg, settings)
	if err != nil {
		return fmt.Errorf("unable to generate utilities from '%s': %w", src, err)
	}
	log.Info("Utilities generated",
		zap.Int("keyframes", len(res.Keyframes)),
		zap.Int("sequence", res.Sequence.Len()),
		zap.Int("durations", res.Durations.Len()))
	if res.Sequence.Len() == 0 {
		log.Warn("No sequence utilities generated, check keyframes and animationSequence.sequence in theme")
	}
	env.Rpt.StoreData("utilities.txt", []byte(dumpUtilities(reg.Utilities())))

	if err := ctx.Err(); err != nil {
		return err
	}

	values := newTemplateValues(src, env.Format)
	data, err := encode(env.Format, reg, res, values, env, log)
	if err != nil {
		return err
	}
	return writeOutput(data, dst, values, env, log)
}

// writeOutput writes data to stdout, file or templated file in directory.
func writeOutput(data []byte, dst string, values templateValues, env *state.LocalEnv, log *zap.Logger) error {
	env.Rpt.StoreData("output"+env.Format.Ext(), data)

	if len(dst) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, buildOutputName(values, env, log))
	}

	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Info("Output written", zap.String("file", dst), zap.Int("bytes", len(data)))
	return nil
}
