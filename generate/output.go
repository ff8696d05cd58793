package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"animseq/common"
	"animseq/config"
	"animseq/css"
	"animseq/misc"
	"animseq/plugin"
	"animseq/state"
	"animseq/utilities"
)

// templateValues are available to output name and banner templates.
type templateValues struct {
	App     string
	Version string
	Theme   string // theme file name without extension
	Format  string
}

func newTemplateValues(src string, format common.OutputFmt) templateValues {
	return templateValues{
		App:     misc.GetAppName(),
		Version: misc.GetVersion(),
		Theme:   strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Format:  format.String(),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values templateValues) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

// buildOutputName returns file name for output placed into directory.
func buildOutputName(values templateValues, env *state.LocalEnv, log *zap.Logger) string {
	name := values.Theme
	if env.Cfg.Output.NameTemplate != "" {
		expanded, err := expandTemplate(config.NameTemplateFieldName, env.Cfg.Output.NameTemplate, values)
		if err != nil {
			log.Warn("Unable to prepare output file name, using default", zap.Error(err))
		} else if expanded = strings.TrimSpace(expanded); expanded != "" {
			name = expanded
		}
	}
	if env.Cfg.Output.Transliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + env.Format.Ext()
}

// encode renders generation results in requested format.
func encode(format common.OutputFmt, reg *plugin.SheetRegistry, res *plugin.Result, values templateValues, env *state.LocalEnv, log *zap.Logger) ([]byte, error) {
	switch format {
	case common.OutputFmtCss:
		var banner string
		if env.Cfg.Output.Banner != "" {
			var err error
			if banner, err = expandTemplate(config.BannerFieldName, env.Cfg.Output.Banner, values); err != nil {
				log.Warn("Unable to prepare banner, skipping", zap.Error(err))
				banner = ""
			}
		}
		sheet := buildStylesheet(reg, res.Keyframes, strings.TrimSpace(banner), env.Cfg.Generation.EmitKeyframes)
		return []byte(sheet.String()), nil
	case common.OutputFmtJson:
		return encodeJSON(reg.Utilities())
	case common.OutputFmtYaml:
		return encodeYAML(reg.Utilities())
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// buildStylesheet assembles final stylesheet: banner, known @keyframes when
// requested, registered utilities.
func buildStylesheet(reg *plugin.SheetRegistry, keyframes []utilities.Keyframe, banner string, emitKeyframes bool) *css.Stylesheet {
	sheet := &css.Stylesheet{}
	if banner != "" {
		sheet.AddComment(banner)
	}
	if emitKeyframes {
		for _, kf := range keyframes {
			if def, ok := kf.Definition.(*css.Keyframes); ok {
				sheet.AddKeyframes(*def)
			}
		}
	}
	sheet.Items = append(sheet.Items, reg.Stylesheet().Items...)
	return sheet
}

// encodeJSON renders utilities as JSON object keeping utility and property
// order, the same shape framework plugins pass to addUtilities.
func encodeJSON(u *utilities.Utilities) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	first := true
	for sel, d := range u.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeJSONString(buf, sel); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for i, p := range d {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, p.Name); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(buf, p.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	out := new(bytes.Buffer)
	if err := json.Indent(out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("unable to format json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// encodeYAML renders utilities as YAML mapping keeping order.
func encodeYAML(u *utilities.Utilities) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for sel, d := range u.All() {
		props := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range d {
			props.Content = append(props.Content, scalarNode(p.Name), scalarNode(p.Value))
		}
		root.Content = append(root.Content, scalarNode(sel), props)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal yaml: %w", err)
	}
	return data, nil
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
