package grammar

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/1pkg/cargs"
)

// grammarFile represents the top level structure of a grammar file for decoding.
type grammarFile struct {
	Options     []*optionBlock     `hcl:"option,block"`
	Positionals []*positionalBlock `hcl:"positional,block"`
}

type optionBlock struct {
	Key     string     `hcl:"key,label"`
	Pattern string     `hcl:"pattern"`
	Type    *string    `hcl:"type,optional"`
	Group   *int       `hcl:"group,optional"`
	Count   *string    `hcl:"count,optional"`
	Default *cty.Value `hcl:"default,optional"`
}

type positionalBlock struct {
	Key     string     `hcl:"key,label"`
	Count   *string    `hcl:"count,optional"`
	Default *cty.Value `hcl:"default,optional"`
}

// LoadFile parses a single HCL grammar file into a declaration list, block
// order in the file is the declaration order.
func LoadFile(path string) ([]cargs.Declaration, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("grammar file %s can't be parsed, %w", path, diags)
	}
	return declarations(path, f)
}

// Load parses grammar source bytes into a declaration list.
func Load(filename string, src []byte) ([]cargs.Declaration, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("grammar source %s can't be parsed, %w", filename, diags)
	}
	return declarations(filename, f)
}

func declarations(filename string, f *hcl.File) ([]cargs.Declaration, error) {
	var gf grammarFile
	if diags := gohcl.DecodeBody(f.Body, nil, &gf); diags.HasErrors() {
		return nil, fmt.Errorf("grammar source %s can't be decoded, %w", filename, diags)
	}
	decls := make([]cargs.Declaration, 0, len(gf.Options)+len(gf.Positionals))
	for _, o := range gf.Options {
		conf, err := blockConfig(o.Type, o.Group, o.Count, o.Default)
		if err != nil {
			return nil, fmt.Errorf("grammar option %q in %s, %w", o.Key, filename, err)
		}
		decls = append(decls, cargs.Opt(o.Key, o.Pattern, conf))
	}
	for _, ps := range gf.Positionals {
		conf, err := blockConfig(nil, nil, ps.Count, ps.Default)
		if err != nil {
			return nil, fmt.Errorf("grammar positional %q in %s, %w", ps.Key, filename, err)
		}
		decls = append(decls, cargs.Pos(ps.Key, conf))
	}
	return decls, nil
}

func blockConfig(typ *string, group *int, count *string, def *cty.Value) (cargs.Config, error) {
	var conf cargs.Config
	if typ != nil {
		switch *typ {
		case "switch":
			conf.Type = cargs.Switch
		case "next":
			conf.Type = cargs.NextToken
		case "group":
			n := 1
			if group != nil {
				n = *group
			}
			conf.Type = cargs.Group(n)
		default:
			return conf, fmt.Errorf("unsupported capture type %q", *typ)
		}
	} else if group != nil {
		conf.Type = cargs.Group(*group)
	}
	if count != nil {
		switch *count {
		case "*":
			conf.Count = cargs.ZeroOrMore
		case "+":
			conf.Count = cargs.OneOrMore
		default:
			n, err := strconv.Atoi(*count)
			if err != nil {
				return conf, fmt.Errorf("unsupported count %q", *count)
			}
			conf.Count = cargs.Exactly(n)
		}
	}
	if def != nil {
		v, err := defaultValue(*def)
		if err != nil {
			return conf, err
		}
		conf.Default = v
	}
	return conf, nil
}

// defaultValue converts a loosely typed HCL default into the engine value
// shape, a bool, a string or a sequence of strings.
func defaultValue(v cty.Value) (interface{}, error) {
	t := v.Type()
	switch {
	case t == cty.Bool:
		return v.True(), nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		seq := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			es, err := convert.Convert(ev, cty.String)
			if err != nil {
				return nil, fmt.Errorf("default element %v can't be converted, %w", ev, err)
			}
			seq = append(seq, es.AsString())
		}
		return seq, nil
	default:
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("default %v can't be converted, %w", v, err)
		}
		return s.AsString(), nil
	}
}
