package render

import (
	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"refmap/pkg/errors"
)

// Style holds the visual attributes applied to a diagram node.
type Style struct {
	Fill  string `toml:"fill"`  // Background/fill color
	Color string `toml:"color"` // Border/line color
	Shape string `toml:"shape"` // Node shape (DOT shape names)
}

// DefaultStyle is applied when no rule matches a component name.
var DefaultStyle = Style{Fill: "white", Color: "black", Shape: "box"}

// Rule pairs a glob pattern with the style for matching names.
type Rule struct {
	Pattern string `toml:"pattern"`
	Style   Style  `toml:"style"`
}

// Styles is an ordered name→style lookup. Rules are evaluated in
// order and the first matching pattern wins; names with no matching
// rule get the default style.
type Styles struct {
	rules []compiledRule
	def   Style
}

type compiledRule struct {
	pattern string
	g       glob.Glob
	style   Style
}

// NewStyles compiles an ordered rule list. A zero-value def falls back
// to DefaultStyle. Returns ErrCodeInvalidStyle for an uncompilable
// pattern.
func NewStyles(rules []Rule, def Style) (*Styles, error) {
	if def == (Style{}) {
		def = DefaultStyle
	}
	s := &Styles{def: def, rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		g, err := glob.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "compile pattern %q", r.Pattern)
		}
		s.rules = append(s.rules, compiledRule{pattern: r.Pattern, g: g, style: fillStyle(r.Style, def)})
	}
	return s, nil
}

// fillStyle completes unset attributes of a rule's style from the default.
func fillStyle(s, def Style) Style {
	if s.Fill == "" {
		s.Fill = def.Fill
	}
	if s.Color == "" {
		s.Color = def.Color
	}
	if s.Shape == "" {
		s.Shape = def.Shape
	}
	return s
}

// For returns the style for a component name: the first matching rule,
// or the default when none matches.
func (s *Styles) For(name string) Style {
	for _, r := range s.rules {
		if r.g.Match(name) {
			return r.style
		}
	}
	return s.def
}

// styleFile is the TOML layout for a style rule file:
//
//	[default]
//	fill = "white"
//
//	[[rule]]
//	pattern = "github.com/internal/*"
//	style = { fill = "lightblue" }
type styleFile struct {
	Default Style  `toml:"default"`
	Rule    []Rule `toml:"rule"`
}

// LoadStyles reads an ordered style rule file in TOML format.
func LoadStyles(path string) (*Styles, error) {
	var sf styleFile
	if _, err := toml.DecodeFile(path, &sf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode %s", path)
	}
	return NewStyles(sf.Rule, sf.Default)
}
