package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"animseq/css"
	"animseq/state"
	"animseq/utilities"
)

// checkResult summarizes animation utilities found in a stylesheet.
type checkResult struct {
	sequence   int
	durations  int
	other      int      // rules which are not animation utilities
	missing    []string // animation names without @keyframes in the same sheet
	duplicates []string // utility selectors defined more than once
}

// Check is "check" subcommand action.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no stylesheet has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}

	sheet := css.NewParser(log).Parse(data, src)
	res, err := checkStylesheet(sheet)
	if err != nil {
		return fmt.Errorf("stylesheet '%s' is not valid: %w", src, err)
	}
	if len(res.duplicates) > 0 {
		log.Warn("Utilities defined more than once, last definition wins", zap.Strings("selectors", res.duplicates))
	}
	if len(res.missing) > 0 {
		log.Warn("Animations have no @keyframes in this stylesheet", zap.Strings("names", res.missing))
	}
	log.Info("Animation utilities found", zap.String("file", src),
		zap.Int("sequence", res.sequence),
		zap.Int("durations", res.durations),
		zap.Int("other rules", res.other))
	return nil
}

func checkStylesheet(sheet *css.Stylesheet) (*checkResult, error) {
	var (
		res  checkResult
		errs error
	)

	known := make(map[string]bool)
	for _, kf := range sheet.Keyframes() {
		known[kf.Name] = true
	}
	reported := make(map[string]bool)

	for _, r := range sheet.RulesWithPrefix(".animate-") {
		res.sequence++
		name, ok := r.Get(utilities.PropAnimationName)
		if !ok || strings.TrimSpace(name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("rule %s has no %s", r.Selector, utilities.PropAnimationName))
			continue
		}
		if !known[name] && !reported[name] {
			reported[name] = true
			res.missing = append(res.missing, name)
		}
	}
	// empty duration values are never written, rule may legitimately be empty
	durations := sheet.RulesWithPrefix(".animation-duration-")
	res.durations = len(durations)
	res.other = len(sheet.Rules()) - res.sequence - res.durations

	seen := make(map[string]bool)
	for _, r := range slices.Concat(sheet.RulesWithPrefix(".animate-"), durations) {
		if seen[r.Selector] {
			continue
		}
		seen[r.Selector] = true
		if len(sheet.RulesBySelector(r.Selector)) > 1 {
			res.duplicates = append(res.duplicates, r.Selector)
		}
	}
	if errs != nil {
		return nil, errs
	}
	if res.sequence+res.durations == 0 {
		return nil, errors.New("no animation utilities found")
	}
	return &res, nil
}
