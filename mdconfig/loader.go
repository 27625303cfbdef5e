package mdconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// FileConfig is the external, serializable shape of a Config (spec §6.1's
// "configuration surface... beyond the fields the core consumes" is
// explicitly out of scope, but the fields the core does consume are in
// scope, so this loader only ever produces a Config from exactly those
// fields). Grounded on core/types/validation.go's pattern of validating an
// untrusted document against a JSON Schema before decoding it into a Go
// struct.
type FileConfig struct {
	Preset                      string   `json:"preset,omitempty" yaml:"preset,omitempty"`
	Enable                      []string `json:"enable,omitempty" yaml:"enable,omitempty"`
	Disable                     []string `json:"disable,omitempty" yaml:"disable,omitempty"`
	GfmStrikethroughSingleTilde *bool    `json:"gfmStrikethroughSingleTilde,omitempty" yaml:"gfmStrikethroughSingleTilde,omitempty"`
	MathTextSingleDollar        *bool    `json:"mathTextSingleDollar,omitempty" yaml:"mathTextSingleDollar,omitempty"`
	MinSpecVersion               string  `json:"minSpecVersion,omitempty" yaml:"minSpecVersion,omitempty"`
}

// configSchema is the JSON Schema (draft 2020-12) every loaded config
// document is validated against before decoding, matching
// core/types/validation.go's compileSchema (jsonschema.Draft2020).
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "preset": {"type": "string", "enum": ["commonmark", "gfm", "mdx"]},
    "enable": {"type": "array", "items": {"type": "string"}},
    "disable": {"type": "array", "items": {"type": "string"}},
    "gfmStrikethroughSingleTilde": {"type": "boolean"},
    "mathTextSingleDollar": {"type": "boolean"},
    "minSpecVersion": {"type": "string"}
  }
}`

var constructsByName = map[string]Construct{
	"blockQuote":            BlockQuote,
	"listItem":               ListItem,
	"gfmFootnoteDefinition": GfmFootnoteDefinition,
	"blankLine":             BlankLine,
	"thematicBreak":         ThematicBreak,
	"headingAtx":            HeadingAtx,
	"headingSetext":         HeadingSetext,
	"codeFenced":            CodeFenced,
	"codeIndented":          CodeIndented,
	"htmlFlow":              HtmlFlow,
	"mathFlow":              MathFlow,
	"mdxFlowExpression":     MdxFlowExpression,
	"mdxJsxFlow":            MdxJsxFlow,
	"mdxEsm":                MdxEsm,
	"frontmatter":           Frontmatter,
	"definition":            Definition,
	"attention":             Attention,
	"autolink":              Autolink,
	"codeText":              CodeText,
	"mathText":              MathText,
	"characterEscape":       CharacterEscape,
	"characterReference":    CharacterReference,
	"hardBreakEscape":       HardBreakEscape,
	"hardBreakTrailing":     HardBreakTrailing,
	"htmlText":              HtmlText,
	"labelStartImage":       LabelStartImage,
	"labelStartLink":        LabelStartLink,
	"labelEnd":              LabelEnd,
	"gfmAutolinkLiteral":    GfmAutolinkLiteral,
	"gfmStrikethrough":      GfmStrikethrough,
	"gfmTable":              GfmTable,
	"gfmTaskListItemCheck":  GfmTaskListItemCheck,
	"mdxTextExpression":     MdxTextExpression,
	"mdxJsxText":            MdxJsxText,
}

func presetByName(name string) (Construct, error) {
	switch strings.ToLower(name) {
	case "", "commonmark":
		return PresetCommonMark(), nil
	case "gfm":
		return PresetGFM(), nil
	case "mdx":
		return PresetMDX(), nil
	}
	return 0, fmt.Errorf("mdconfig: unknown preset %q", name)
}

func resolveConstruct(name string) (Construct, error) {
	c, ok := constructsByName[name]
	if !ok {
		return 0, fmt.Errorf("mdconfig: unknown construct %q", name)
	}
	return c, nil
}

// ToOptions turns a validated FileConfig into Options applicable to New.
func (fc FileConfig) ToOptions() ([]Option, error) {
	preset, err := presetByName(fc.Preset)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithPreset(preset)}

	for _, name := range fc.Enable {
		c, err := resolveConstruct(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithConstruct(c))
	}
	for _, name := range fc.Disable {
		c, err := resolveConstruct(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithoutConstruct(c))
	}
	if fc.GfmStrikethroughSingleTilde != nil {
		opts = append(opts, WithGfmStrikethroughSingleTilde(*fc.GfmStrikethroughSingleTilde))
	}
	if fc.MathTextSingleDollar != nil {
		opts = append(opts, WithMathTextSingleDollar(*fc.MathTextSingleDollar))
	}
	if fc.MinSpecVersion != "" {
		opts = append(opts, WithMinSpecVersion(fc.MinSpecVersion))
	}
	return opts, nil
}

func validateAgainstSchema(doc interface{}) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("mdconfig://config.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("mdconfig: compiling config schema: %w", err)
	}
	schema, err := compiler.Compile("mdconfig://config.json")
	if err != nil {
		return fmt.Errorf("mdconfig: compiling config schema: %w", err)
	}
	return schema.Validate(doc)
}

// LoadJSON validates data against configSchema, then builds a Config from
// it. Callback fields (MdxExpressionParse, MdxEsmParse) are not
// serializable and must be added afterward via New's Option chain if
// needed.
func LoadJSON(data []byte) (Config, error) {
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return Config{}, fmt.Errorf("mdconfig: parsing JSON: %w", err)
	}
	if err := validateAgainstSchema(generic); err != nil {
		return Config{}, fmt.Errorf("mdconfig: invalid config: %w", err)
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("mdconfig: decoding config: %w", err)
	}
	opts, err := fc.ToOptions()
	if err != nil {
		return Config{}, err
	}
	return New(opts...), nil
}

// LoadYAML is LoadJSON's YAML counterpart (SPEC_FULL.md §2): decode with
// gopkg.in/yaml.v3 into the generic shape jsonschema expects (map[string]
// interface{}, not yaml.v3's default map[interface{}]interface{}), then
// reuse the same schema and FileConfig decode path as LoadJSON.
func LoadYAML(data []byte) (Config, error) {
	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return Config{}, fmt.Errorf("mdconfig: parsing YAML: %w", err)
	}
	if err := validateAgainstSchema(generic); err != nil {
		return Config{}, fmt.Errorf("mdconfig: invalid config: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("mdconfig: decoding config: %w", err)
	}
	opts, err := fc.ToOptions()
	if err != nil {
		return Config{}, err
	}
	return New(opts...), nil
}
