package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"animseq/css"
)

func TestParser_SimpleRule(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`.animate-fade-in { animation-name: fade-in; animation-delay: .25s; }`))

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	rule := rules[0]
	if rule.Selector != ".animate-fade-in" {
		t.Errorf("selector = %q, want %q", rule.Selector, ".animate-fade-in")
	}
	if v, ok := rule.Get("animation-name"); !ok || v != "fade-in" {
		t.Errorf("animation-name = %q, %v", v, ok)
	}
	if v, ok := rule.Get("animation-delay"); !ok || v != ".25s" {
		t.Errorf("animation-delay = %q, %v", v, ok)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`.a, .b { animation-duration: 75ms; }`))

	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Selector != ".a" || rules[1].Selector != ".b" {
		t.Errorf("selectors = %q, %q", rules[0].Selector, rules[1].Selector)
	}

	// declarations must not be shared between rules
	rules[0].Declarations[0].Value = "changed"
	if v, _ := sheet.Rules()[1].Get("animation-duration"); v != "75ms" {
		t.Errorf("second rule value = %q, want %q", v, "75ms")
	}
}

func TestParser_FunctionValue(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`.x { animation-timing-function: cubic-bezier(0.4, 0, 0.2, 1); }`))

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	v, _ := rules[0].Get("animation-timing-function")
	if !strings.HasPrefix(v, "cubic-bezier(") || !strings.HasSuffix(v, ")") {
		t.Errorf("timing function = %q", v)
	}
}

func TestParser_Keyframes(t *testing.T) {
	input := `
@keyframes slide-up {
  0% { transform: translateY(24px); opacity: 0; }
  100% { transform: translateY(0); opacity: 1; }
}
@keyframes fade-in {
  from { opacity: 0; }
  to { opacity: 1; }
}
.animate-slide-up { animation-name: slide-up; }
`
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(input), "test.css")

	kfs := sheet.Keyframes()
	if len(kfs) != 2 {
		t.Fatalf("expected 2 keyframes, got %d", len(kfs))
	}
	if kfs[0].Name != "slide-up" || kfs[1].Name != "fade-in" {
		t.Errorf("names = %q, %q", kfs[0].Name, kfs[1].Name)
	}
	if len(kfs[0].Frames) != 2 {
		t.Fatalf("slide-up frames = %d, want 2", len(kfs[0].Frames))
	}
	if kfs[0].Frames[0].Selector != "0%" {
		t.Errorf("first frame selector = %q, want %q", kfs[0].Frames[0].Selector, "0%")
	}
	if len(kfs[0].Frames[0].Declarations) != 2 {
		t.Errorf("first frame declarations = %d, want 2", len(kfs[0].Frames[0].Declarations))
	}
	if kfs[1].Frames[1].Selector != "to" {
		t.Errorf("fade-in last frame = %q, want %q", kfs[1].Frames[1].Selector, "to")
	}

	if len(sheet.Rules()) != 1 {
		t.Errorf("expected 1 rule after keyframes, got %d", len(sheet.Rules()))
	}
}

func TestParser_VendorKeyframes(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`@-webkit-keyframes spin { to { transform: rotate(360deg); } }`))

	kfs := sheet.Keyframes()
	if len(kfs) != 1 || kfs[0].Name != "spin" {
		t.Fatalf("keyframes = %+v", kfs)
	}
}

func TestParser_SkipsOtherAtRules(t *testing.T) {
	input := `
@media (min-width: 640px) { .a { color: red; } }
@import url("x.css");
.b { color: blue; }
`
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(input))

	rules := sheet.Rules()
	if len(rules) != 1 || rules[0].Selector != ".b" {
		t.Fatalf("rules = %+v", rules)
	}
	if len(sheet.Warnings) == 0 {
		t.Error("expected warning for skipped @media block")
	}
}

func TestParser_Empty(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse(nil)
	if len(sheet.Items) != 0 {
		t.Errorf("expected no items, got %d", len(sheet.Items))
	}
}

func TestParser_RoundTrip(t *testing.T) {
	var sheet css.Stylesheet
	sheet.AddComment("generated")
	sheet.AddKeyframes(css.Keyframes{Name: "fade-in", Frames: []css.Frame{
		{Selector: "from", Declarations: []css.Declaration{{Property: "opacity", Value: "0"}}},
		{Selector: "to", Declarations: []css.Declaration{{Property: "opacity", Value: "1"}}},
	}})
	sheet.AddRule(css.Rule{Selector: ".animate-fade-in-2", Declarations: []css.Declaration{
		{Property: "animation-name", Value: "fade-in"},
		{Property: "animation-fill-mode", Value: ""},
		{Property: "animation-delay", Value: ".25s"},
	}})

	parsed := css.NewParser(nil).Parse([]byte(sheet.String()))

	if kfs := parsed.Keyframes(); len(kfs) != 1 || kfs[0].Name != "fade-in" {
		t.Fatalf("keyframes = %+v", kfs)
	}
	rules := parsed.RulesBySelector(".animate-fade-in-2")
	if len(rules) != 1 {
		t.Fatalf("expected rule .animate-fade-in-2, got %d", len(rules))
	}
	if len(rules[0].Declarations) != 2 {
		t.Errorf("declarations = %+v, empty value must not be written", rules[0].Declarations)
	}
}
