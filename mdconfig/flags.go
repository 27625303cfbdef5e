// Package mdconfig implements spec §6.1's configuration surface: the
// ConstructFlags bit-set, the CommonMark/GFM/MDX presets, functional
// options (grounded on runtime/lexer/v2's LexerOpt/LexerConfig), and an
// external JSON/YAML config loader validated against a JSON Schema
// (grounded on core/types/validation.go).
package mdconfig

// Construct names the constructs a driver may attempt (spec §4.2's table,
// spec §4.1.1's "disabled constructs are skipped at attempt time").
type Construct uint64

const (
	BlockQuote Construct = 1 << iota
	ListItem
	GfmFootnoteDefinition
	BlankLine
	ThematicBreak
	HeadingAtx
	HeadingSetext
	CodeFenced
	CodeIndented
	HtmlFlow
	MathFlow
	MdxFlowExpression
	MdxJsxFlow
	MdxEsm
	Frontmatter
	Definition
	Attention
	Autolink
	CodeText
	MathText
	CharacterEscape
	CharacterReference
	HardBreakEscape
	HardBreakTrailing
	HtmlText
	LabelStartImage
	LabelStartLink
	LabelEnd
	GfmAutolinkLiteral
	GfmStrikethrough
	GfmTable
	GfmTaskListItemCheck
	MdxTextExpression
	MdxJsxText
)

// Has reports whether flags enables construct.
func (flags Construct) Has(construct Construct) bool {
	return flags&construct != 0
}

// With returns flags with construct enabled.
func (flags Construct) With(construct Construct) Construct {
	return flags | construct
}

// Without returns flags with construct disabled.
func (flags Construct) Without(construct Construct) Construct {
	return flags &^ construct
}

// commonMarkConstructs is every base construct spec §6.1 lists as
// enabled under the CommonMark preset.
const commonMarkConstructs = BlockQuote | ListItem | BlankLine | ThematicBreak |
	HeadingAtx | HeadingSetext | CodeFenced | CodeIndented | HtmlFlow |
	Definition | Attention | Autolink | CodeText | CharacterEscape |
	CharacterReference | HardBreakEscape | HardBreakTrailing | HtmlText |
	LabelStartImage | LabelStartLink | LabelEnd

// gfmExtraConstructs is what the GFM preset adds on top of CommonMark
// (spec §6.1: "adds autolink literal, footnote, strikethrough, table,
// task list").
const gfmExtraConstructs = GfmAutolinkLiteral | GfmFootnoteDefinition |
	GfmStrikethrough | GfmTable | GfmTaskListItemCheck

// mdxConstructs is the MDX preset's construct set (spec §6.1: "turns off
// autolink/indented code/HTML, enables MDX constructs").
const mdxConstructs = (commonMarkConstructs &^ (Autolink | CodeIndented | HtmlFlow | HtmlText)) |
	MdxFlowExpression | MdxTextExpression | MdxJsxFlow | MdxJsxText | MdxEsm

// PresetCommonMark returns the bit-set for the CommonMark preset: all
// base constructs on, extensions off.
func PresetCommonMark() Construct { return commonMarkConstructs }

// PresetGFM returns the CommonMark preset plus the GitHub Flavored
// Markdown extensions.
func PresetGFM() Construct { return commonMarkConstructs | gfmExtraConstructs }

// PresetMDX returns the MDX preset.
func PresetMDX() Construct { return mdxConstructs }
