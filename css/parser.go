package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into plain rules and @keyframes blocks.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Comments are dropped, @-rules other
// than @keyframes are skipped with a warning.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if isKeyframesRule(atRule) {
				kf := p.parseKeyframes(parser)
				if kf.Name == "" {
					sheet.Warnings = append(sheet.Warnings, "unnamed "+atRule+" block")
					continue
				}
				p.log.Debug("Parsed @keyframes", zap.String("name", kf.Name), zap.Int("frames", len(kf.Frames)))
				sheet.Items = append(sheet.Items, StylesheetItem{Keyframes: &kf})
				continue
			}
			skipAtRuleBlock(parser)
			sheet.Warnings = append(sheet.Warnings, "skipped "+atRule+" block")
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import)
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selectors := joinTokens(data, parser.Values())
			decls := parseDeclarations(parser)
			for sel := range strings.SplitSeq(selectors, ",") {
				sel = strings.TrimSpace(sel)
				if sel == "" {
					continue
				}
				// every rule gets its own copy of declarations
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &Rule{
					Selector:     sel,
					Declarations: append([]Declaration(nil), decls...),
				}})
			}
		}
	}
}

func isKeyframesRule(atRule string) bool {
	// vendor prefixed forms (@-webkit-keyframes) are treated the same way
	return atRule == "@keyframes" || (strings.HasPrefix(atRule, "@-") && strings.HasSuffix(atRule, "-keyframes"))
}

// parseKeyframes reads @keyframes prelude and frames up to the end of the block.
func (p *Parser) parseKeyframes(parser *css.Parser) Keyframes {
	kf := Keyframes{Name: unquote(joinTokens(nil, parser.Values()))}
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return kf
		case css.BeginRulesetGrammar:
			sel := joinTokens(data, parser.Values())
			kf.Frames = append(kf.Frames, Frame{Selector: sel, Declarations: parseDeclarations(parser)})
		case css.BeginAtRuleGrammar:
			skipAtRuleBlock(parser)
		}
	}
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if value := joinTokens(nil, parser.Values()); value != "" {
				decls = append(decls, Declaration{Property: strings.TrimSpace(string(data)), Value: value})
			}
		}
	}
}

// joinTokens builds normalized text from leading data and tokens collapsing
// whitespace runs into a single space.
func joinTokens(data []byte, tokens []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
