package cargs

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/mitchellh/mapstructure"
)

// Config carries the per declaration capture configuration. The zero value
// declares a scalar switch like option, see inference rules on Option.
type Config struct {
	Type    Capture     `mapstructure:"type"`
	Count   Arity       `mapstructure:"count"`
	Default interface{} `mapstructure:"default"`
}

// DecodeConfig builds a declaration config from a loosely typed map with
// "type", "count" and "default" keys, where type is one of "switch", "next"
// or a capture group index and count is one of "*", "+" or an exact number.
func DecodeConfig(m map[string]interface{}) (Config, error) {
	var conf Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(decodeCapture, decodeArity),
		ErrorUnused: true,
		Result:      &conf,
	})
	if err != nil {
		return conf, err
	}
	if err := dec.Decode(m); err != nil {
		return conf, fmt.Errorf("argument config %v can't be decoded, %v, %w", m, err, ErrInvalidDeclaration)
	}
	return conf, nil
}

func decodeCapture(f, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(Capture{}) {
		return data, nil
	}
	switch d := data.(type) {
	case string:
		switch d {
		case "switch":
			return Switch, nil
		case "next":
			return NextToken, nil
		}
		return nil, fmt.Errorf("unsupported capture type %q", d)
	case int:
		return Group(d), nil
	case int64:
		return Group(int(d)), nil
	default:
		return nil, fmt.Errorf("unsupported capture type %v", data)
	}
}

func decodeArity(f, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(Arity{}) {
		return data, nil
	}
	switch d := data.(type) {
	case string:
		switch d {
		case "*":
			return ZeroOrMore, nil
		case "+":
			return OneOrMore, nil
		}
		return nil, fmt.Errorf("unsupported count %q", d)
	case int:
		return Exactly(d), nil
	case int64:
		return Exactly(int(d)), nil
	default:
		return nil, fmt.Errorf("unsupported count %v", data)
	}
}

// Declaration is a single argument declaration, either an option matched by
// its pattern or a positional slot filled by unclaimed tokens.
type Declaration struct {
	Key        string
	Pattern    string
	Positional bool
	Config     Config
}

// Opt declares an option argument matched against whole tokens by pattern.
func Opt(key, pattern string, conf Config) Declaration {
	return Declaration{Key: key, Pattern: pattern, Config: conf}
}

// Pos declares a positional argument slot.
func Pos(key string, conf Config) Declaration {
	return Declaration{Key: key, Positional: true, Config: conf}
}

type option struct {
	key     string
	pattern *regexp.Regexp
	capture Capture
	arity   Arity
	seed    interface{}
}

type positional struct {
	key   string
	arity Arity
	seed  interface{}
}

// Parser holds registered declarations and interprets raw token vectors
// against them. Registration order is significant, options are tried first
// match wins and positional slots fill strictly left to right. A Parser is
// read only once declared and safe for concurrent Parse calls.
type Parser struct {
	opts []option
	poss []positional
	keys map[string]struct{}
}

func New() *Parser {
	return &Parser{keys: make(map[string]struct{})}
}

// Declare registers the provided declarations in order.
func (p *Parser) Declare(decls ...Declaration) error {
	for _, d := range decls {
		if d.Positional {
			if d.Pattern != "" {
				return fmt.Errorf("positional %q can't declare a pattern %q, %w", d.Key, d.Pattern, ErrInvalidDeclaration)
			}
			if err := p.Positional(d.Key, d.Config); err != nil {
				return err
			}
			continue
		}
		if err := p.Option(d.Key, d.Pattern, d.Config); err != nil {
			return err
		}
	}
	return nil
}

// Option registers an option declaration. An unset capture type is inferred,
// a plural count defaults to group 1 capture when the pattern contains a
// capture group and to next token capture otherwise, a scalar count defaults
// to a switch. Switches default to false unless overridden.
func (p *Parser) Option(key, pattern string, conf Config) error {
	if err := p.claim(key); err != nil {
		return err
	}
	if pattern == "" {
		return fmt.Errorf("option %q has an empty pattern, %w", key, ErrInvalidDeclaration)
	}
	// Anchored so patterns claim whole tokens only.
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return fmt.Errorf("option %q pattern %q can't be compiled, %v, %w", key, pattern, err, ErrInvalidDeclaration)
	}
	capture := conf.Type
	if capture.kind == captureUnset {
		switch {
		case conf.Count.Plural() && re.NumSubexp() > 0:
			capture = Group(1)
		case conf.Count.Plural():
			capture = NextToken
		default:
			capture = Switch
		}
	}
	if capture.kind == captureGroup && capture.group > re.NumSubexp() {
		return fmt.Errorf("option %q pattern %q has no capture group %d, %w", key, pattern, capture.group, ErrInvalidDeclaration)
	}
	def := conf.Default
	if capture.kind == captureSwitch {
		if conf.Count.Plural() {
			return fmt.Errorf("option %q is a switch and can't capture a sequence, %w", key, ErrInvalidDeclaration)
		}
		if def == nil {
			def = false
		}
	}
	seed, err := seedValue(key, conf.Count, def)
	if err != nil {
		return err
	}
	p.keys[key] = struct{}{}
	p.opts = append(p.opts, option{key: key, pattern: re, capture: capture, arity: conf.Count, seed: seed})
	return nil
}

// Positional registers a positional declaration.
func (p *Parser) Positional(key string, conf Config) error {
	if err := p.claim(key); err != nil {
		return err
	}
	if conf.Type.kind != captureUnset {
		return fmt.Errorf("positional %q can't declare a capture type %s, %w", key, conf.Type, ErrInvalidDeclaration)
	}
	seed, err := seedValue(key, conf.Count, conf.Default)
	if err != nil {
		return err
	}
	p.keys[key] = struct{}{}
	p.poss = append(p.poss, positional{key: key, arity: conf.Count, seed: seed})
	return nil
}

func (p *Parser) claim(key string) error {
	if key == "" {
		return fmt.Errorf("declaration key is empty, %w", ErrInvalidDeclaration)
	}
	if _, dup := p.keys[key]; dup {
		return fmt.Errorf("declaration key %q is used twice, %w", key, ErrInvalidDeclaration)
	}
	return nil
}

func seedValue(key string, arity Arity, def interface{}) (interface{}, error) {
	if !arity.Plural() {
		return def, nil
	}
	if def == nil {
		return []string{}, nil
	}
	seq, ok := def.([]string)
	if !ok {
		return nil, fmt.Errorf("declaration %q default %v is not a sequence, %w", key, def, ErrInvalidDeclaration)
	}
	return seq, nil
}
