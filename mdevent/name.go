package mdevent

// Name is a construct label (spec §3.2's ConstructLabel / GLOSSARY
// "Construct"). The CommonMark-core subset is ported verbatim from
// original_source/src/event.rs's Name enum; GFM, math, frontmatter and MDX
// labels are added following the same naming convention, since that
// snapshot of event.rs predates those extensions being folded in (see
// SPEC_FULL.md §3).
type Name string

// CommonMark core labels (ported from original_source/src/event.rs).
const (
	AttentionSequence                    Name = "AttentionSequence"
	Autolink                             Name = "Autolink"
	AutolinkEmail                        Name = "AutolinkEmail"
	AutolinkMarker                       Name = "AutolinkMarker"
	AutolinkProtocol                     Name = "AutolinkProtocol"
	BlankLineEnding                      Name = "BlankLineEnding"
	BlockQuote                           Name = "BlockQuote"
	BlockQuoteMarker                     Name = "BlockQuoteMarker"
	BlockQuotePrefix                     Name = "BlockQuotePrefix"
	ByteOrderMark                        Name = "ByteOrderMark"
	CharacterEscape                      Name = "CharacterEscape"
	CharacterEscapeMarker                Name = "CharacterEscapeMarker"
	CharacterEscapeValue                 Name = "CharacterEscapeValue"
	CharacterReference                   Name = "CharacterReference"
	CharacterReferenceMarker             Name = "CharacterReferenceMarker"
	CharacterReferenceMarkerHexadecimal  Name = "CharacterReferenceMarkerHexadecimal"
	CharacterReferenceMarkerNumeric      Name = "CharacterReferenceMarkerNumeric"
	CharacterReferenceMarkerSemi         Name = "CharacterReferenceMarkerSemi"
	CharacterReferenceValue              Name = "CharacterReferenceValue"
	CodeFenced                           Name = "CodeFenced"
	CodeFencedFence                      Name = "CodeFencedFence"
	CodeFencedFenceInfo                  Name = "CodeFencedFenceInfo"
	CodeFencedFenceMeta                  Name = "CodeFencedFenceMeta"
	CodeFencedFenceSequence              Name = "CodeFencedFenceSequence"
	CodeFlowChunk                        Name = "CodeFlowChunk"
	CodeIndented                         Name = "CodeIndented"
	CodeText                             Name = "CodeText"
	CodeTextData                        Name = "CodeTextData"
	CodeTextSequence                     Name = "CodeTextSequence"
	Data                                  Name = "Data"
	Definition                            Name = "Definition"
	DefinitionDestination                Name = "DefinitionDestination"
	DefinitionDestinationLiteral         Name = "DefinitionDestinationLiteral"
	DefinitionDestinationLiteralMarker   Name = "DefinitionDestinationLiteralMarker"
	DefinitionDestinationRaw             Name = "DefinitionDestinationRaw"
	DefinitionDestinationString          Name = "DefinitionDestinationString"
	DefinitionLabel                      Name = "DefinitionLabel"
	DefinitionLabelMarker                Name = "DefinitionLabelMarker"
	DefinitionLabelString                Name = "DefinitionLabelString"
	DefinitionMarker                     Name = "DefinitionMarker"
	DefinitionTitle                      Name = "DefinitionTitle"
	DefinitionTitleMarker                Name = "DefinitionTitleMarker"
	DefinitionTitleString                Name = "DefinitionTitleString"
	Emphasis                             Name = "Emphasis"
	EmphasisSequence                     Name = "EmphasisSequence"
	EmphasisText                         Name = "EmphasisText"
	HardBreakEscape                      Name = "HardBreakEscape"
	HardBreakTrailing                    Name = "HardBreakTrailing"
	HeadingAtx                           Name = "HeadingAtx"
	HeadingAtxSequence                   Name = "HeadingAtxSequence"
	HeadingAtxText                       Name = "HeadingAtxText"
	HeadingSetext                        Name = "HeadingSetext"
	HeadingSetextText                    Name = "HeadingSetextText"
	HeadingSetextUnderline               Name = "HeadingSetextUnderline"
	HtmlFlow                             Name = "HtmlFlow"
	HtmlFlowData                         Name = "HtmlFlowData"
	HtmlText                             Name = "HtmlText"
	HtmlTextData                         Name = "HtmlTextData"
	Image                                 Name = "Image"
	Label                                 Name = "Label"
	LabelEnd                             Name = "LabelEnd"
	LabelImage                           Name = "LabelImage"
	LabelImageMarker                     Name = "LabelImageMarker"
	LabelLink                            Name = "LabelLink"
	LabelMarker                          Name = "LabelMarker"
	LabelText                            Name = "LabelText"
	LineEnding                           Name = "LineEnding"
	Link                                  Name = "Link"
	ListItem                             Name = "ListItem"
	ListItemMarker                       Name = "ListItemMarker"
	ListItemPrefix                       Name = "ListItemPrefix"
	ListItemValue                        Name = "ListItemValue"
	ListOrdered                          Name = "ListOrdered"
	ListUnordered                        Name = "ListUnordered"
	Paragraph                             Name = "Paragraph"
	Reference                            Name = "Reference"
	ReferenceMarker                      Name = "ReferenceMarker"
	ReferenceString                      Name = "ReferenceString"
	Resource                             Name = "Resource"
	ResourceDestination                  Name = "ResourceDestination"
	ResourceDestinationLiteral           Name = "ResourceDestinationLiteral"
	ResourceDestinationLiteralMarker     Name = "ResourceDestinationLiteralMarker"
	ResourceDestinationRaw               Name = "ResourceDestinationRaw"
	ResourceDestinationString            Name = "ResourceDestinationString"
	ResourceMarker                       Name = "ResourceMarker"
	ResourceTitle                        Name = "ResourceTitle"
	ResourceTitleMarker                  Name = "ResourceTitleMarker"
	ResourceTitleString                  Name = "ResourceTitleString"
	SpaceOrTab                           Name = "SpaceOrTab"
	Strong                                Name = "Strong"
	StrongSequence                       Name = "StrongSequence"
	StrongText                           Name = "StrongText"
	ThematicBreak                        Name = "ThematicBreak"
	ThematicBreakSequence                Name = "ThematicBreakSequence"
)

// Root wraps the whole document; not part of the ported enum (markdown-rs
// emits it from the compiler/AST layer) but the tokenizer owns it here
// since spec §8.2 requires "a single Root Enter/Exit pair" for empty input.
const Root Name = "Root"

// GFM extension labels.
const (
	GfmStrikethrough         Name = "GfmStrikethrough"
	GfmStrikethroughSequence Name = "GfmStrikethroughSequence"
	GfmStrikethroughText     Name = "GfmStrikethroughText"

	GfmTable          Name = "GfmTable"
	GfmTableHead      Name = "GfmTableHead"
	GfmTableRow       Name = "GfmTableRow"
	GfmTableCell      Name = "GfmTableCell"
	GfmTableCellText  Name = "GfmTableCellText"
	GfmTableDelimiter Name = "GfmTableDelimiterRow"

	GfmFootnoteDefinition        Name = "GfmFootnoteDefinition"
	GfmFootnoteDefinitionLabel   Name = "GfmFootnoteDefinitionLabel"
	GfmFootnoteDefinitionMarker  Name = "GfmFootnoteDefinitionMarker"
	GfmFootnoteDefinitionPrefix  Name = "GfmFootnoteDefinitionPrefix"
	GfmFootnoteCall              Name = "GfmFootnoteCall"
	GfmFootnoteCallLabel         Name = "GfmFootnoteCallLabel"
	GfmFootnoteCallMarker        Name = "GfmFootnoteCallMarker"

	GfmTaskListItemCheck  Name = "GfmTaskListItemCheck"
	GfmTaskListItemMarker Name = "GfmTaskListItemMarker"
	GfmTaskListItemValue  Name = "GfmTaskListItemValueMarker"

	GfmAutolinkLiteral        Name = "GfmAutolinkLiteral"
	GfmAutolinkLiteralEmail   Name = "GfmAutolinkLiteralEmail"
	GfmAutolinkLiteralMailto  Name = "GfmAutolinkLiteralMailtoMarker"
	GfmAutolinkLiteralWww     Name = "GfmAutolinkLiteralWww"
	GfmAutolinkLiteralXmpp    Name = "GfmAutolinkLiteralXmppMarker"
)

// Math labels (GFM-adjacent dollar-fence extension).
const (
	MathFlow             Name = "MathFlow"
	MathFlowFence        Name = "MathFlowFence"
	MathFlowFenceSequence Name = "MathFlowFenceSequence"
	MathFlowFenceMeta    Name = "MathFlowFenceMeta"
	MathFlowChunk        Name = "MathFlowChunk"
	MathText             Name = "MathText"
	MathTextData         Name = "MathTextData"
	MathTextSequence     Name = "MathTextSequence"
)

// Frontmatter labels.
const (
	Frontmatter        Name = "Frontmatter"
	FrontmatterFence   Name = "FrontmatterFence"
	FrontmatterSequence Name = "FrontmatterSequence"
	FrontmatterChunk   Name = "FrontmatterChunk"
)

// MDX labels.
const (
	MdxEsm     Name = "MdxjsEsm"
	MdxEsmData Name = "MdxjsEsmData"

	MdxFlowExpression  Name = "MdxFlowExpression"
	MdxTextExpression  Name = "MdxTextExpression"
	MdxExpressionMarker Name = "MdxExpressionMarker"
	MdxExpressionData  Name = "MdxExpressionData"

	MdxJsxFlowTag  Name = "MdxJsxFlowTag"
	MdxJsxTextTag  Name = "MdxJsxTextTag"
	MdxJsxTagMarker Name = "MdxJsxTagMarker"
	MdxJsxTagName  Name = "MdxJsxTagNameData"
	MdxJsxTagClosingMarker Name = "MdxJsxTagClosingMarker"
	MdxJsxTagSelfClosingMarker Name = "MdxJsxTagSelfClosingMarker"
	MdxJsxTagAttribute Name = "MdxJsxTagAttribute"
	MdxJsxTagAttributeName Name = "MdxJsxTagAttributeNameData"
	MdxJsxTagAttributeValue Name = "MdxJsxTagAttributeValue"
)

// voidSet is the fixed list of construct labels that must carry no nested
// events between their Enter and Exit (spec §3.2). The CommonMark-core
// 40 are ported verbatim from original_source/src/event.rs's VOID_EVENTS;
// the rest are added for parity across the GFM/math/frontmatter/MDX
// extensions, per spec §3.2 ("a fixed list of ~40 construct labels ...
// sequence markers, markers, line endings, data chunks, value fragments").
var voidSet = map[Name]bool{
	AttentionSequence:                   true,
	AutolinkEmail:                       true,
	AutolinkMarker:                      true,
	AutolinkProtocol:                    true,
	BlankLineEnding:                     true,
	BlockQuoteMarker:                    true,
	ByteOrderMark:                       true,
	CharacterEscapeMarker:               true,
	CharacterEscapeValue:                true,
	CharacterReferenceMarker:            true,
	CharacterReferenceMarkerHexadecimal: true,
	CharacterReferenceMarkerNumeric:     true,
	CharacterReferenceMarkerSemi:        true,
	CharacterReferenceValue:             true,
	CodeFencedFenceSequence:             true,
	CodeFlowChunk:                       true,
	CodeTextData:                        true,
	CodeTextSequence:                    true,
	Data:                                true,
	DefinitionDestinationLiteralMarker:  true,
	DefinitionLabelMarker:               true,
	DefinitionMarker:                    true,
	DefinitionTitleMarker:               true,
	EmphasisSequence:                    true,
	HardBreakEscape:                     true,
	HardBreakTrailing:                   true,
	HeadingAtxSequence:                  true,
	HeadingSetextUnderline:              true,
	HtmlFlowData:                        true,
	HtmlTextData:                        true,
	LabelImageMarker:                    true,
	LabelMarker:                         true,
	LineEnding:                          true,
	ListItemMarker:                      true,
	ListItemValue:                       true,
	ReferenceMarker:                     true,
	ResourceMarker:                      true,
	ResourceTitleMarker:                 true,
	StrongSequence:                      true,
	ThematicBreakSequence:               true,

	// Extensions, following the same convention as the core 40.
	GfmStrikethroughSequence:  true,
	GfmTableDelimiter:         true,
	GfmFootnoteDefinitionMarker: true,
	GfmFootnoteCallMarker:     true,
	GfmTaskListItemMarker:     true,
	GfmTaskListItemValue:      true,
	GfmAutolinkLiteralMailto:  true,
	GfmAutolinkLiteralXmpp:    true,
	MathFlowFenceSequence:     true,
	MathFlowChunk:             true,
	MathTextData:              true,
	MathTextSequence:          true,
	FrontmatterSequence:       true,
	FrontmatterChunk:          true,
	MdxEsmData:                true,
	MdxExpressionMarker:       true,
	MdxExpressionData:        true,
	MdxJsxTagMarker:           true,
	MdxJsxTagName:             true,
	MdxJsxTagClosingMarker:    true,
	MdxJsxTagSelfClosingMarker: true,
	MdxJsxTagAttributeName:    true,
	MdxJsxTagAttributeValue:   true,
}

// IsVoid reports whether name must not contain nested events between its
// matching Enter and Exit.
func IsVoid(name Name) bool {
	return voidSet[name]
}
