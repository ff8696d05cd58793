package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"animseq/css"
	"animseq/state"
	"animseq/utilities"
)

// loadKeyframeSources collects @keyframes names from CSS files in order of
// appearance. Definitions are left out: those blocks already live in their
// own stylesheets and must not be emitted again.
func loadKeyframeSources(ctx context.Context, paths []string, env *state.LocalEnv, log *zap.Logger) ([]utilities.Keyframe, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	parser := css.NewParser(log)
	var keyframes []utilities.Keyframe
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read keyframes source: %w", err)
		}
		env.Rpt.Store(fmt.Sprintf("keyframes/%d-%s", i, filepath.Base(path)), path)

		sheet := parser.Parse(data, path)
		for _, w := range sheet.Warnings {
			log.Debug("Keyframes source", zap.String("file", path), zap.String("warning", w))
		}
		found := sheet.Keyframes()
		for _, kf := range found {
			keyframes = append(keyframes, utilities.Keyframe{Name: kf.Name})
		}
		log.Debug("Keyframes source processed", zap.String("file", path), zap.Int("keyframes", len(found)))
	}
	return keyframes, nil
}
