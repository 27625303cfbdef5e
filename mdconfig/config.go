package mdconfig

// ExpressionKind distinguishes the three MDX expression positions an
// mdx_expression_parse callback may be invoked for (spec §6.1).
type ExpressionKind int

const (
	ExpressionFlow ExpressionKind = iota
	ExpressionText
	ExpressionAttributeValue
)

// SignalKind is the outcome of an MDX parser-hook callback (spec §6.1,
// §4.3.17).
type SignalKind int

const (
	SignalOk SignalKind = iota
	SignalEOF
	SignalError
)

// Signal is returned by an MdxExpressionParse or MdxEsmParse callback.
type Signal struct {
	Kind    SignalKind
	Message string
	// Offset is a 0-based byte offset into the callback's input, only
	// meaningful when Kind is SignalError (spec §4.3.17).
	Offset int
}

// ExpressionParseFunc is the `mdx_expression_parse` callback (spec §6.1).
type ExpressionParseFunc func(source string, kind ExpressionKind) Signal

// EsmParseFunc is the `mdx_esm_parse` callback (spec §6.1).
type EsmParseFunc func(source string) Signal

// Config holds every field the core tokenizer consumes (spec §6.1).
// Built via New(opts...), never constructed as a bare struct literal
// outside this package so presets and validation stay in one place,
// matching the teacher's LexerConfig/LexerOpt pattern
// (runtime/lexer/v2/lexer.go).
type Config struct {
	constructs Construct

	gfmStrikethroughSingleTilde bool
	mathTextSingleDollar        bool

	mdxExpressionParse ExpressionParseFunc
	mdxEsmParse        EsmParseFunc

	// specVersion gates MDX/experimental constructs by a configured
	// minimum spec version, compared with golang.org/x/mod/semver
	// (SPEC_FULL.md §2). Empty means "no gating".
	specVersion string
}

// Option configures a Config, following runtime/lexer/v2.LexerOpt.
type Option func(*Config)

// New builds a Config from opts, defaulting to the CommonMark preset.
func New(opts ...Option) Config {
	c := Config{
		constructs:                   PresetCommonMark(),
		gfmStrikethroughSingleTilde: true,
		mathTextSingleDollar:        true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithPreset replaces the construct set wholesale.
func WithPreset(preset Construct) Option {
	return func(c *Config) { c.constructs = preset }
}

// WithConstruct enables a single construct on top of whatever preset is
// already configured.
func WithConstruct(construct Construct) Option {
	return func(c *Config) { c.constructs = c.constructs.With(construct) }
}

// WithoutConstruct disables a single construct.
func WithoutConstruct(construct Construct) Option {
	return func(c *Config) { c.constructs = c.constructs.Without(construct) }
}

// WithGfmStrikethroughSingleTilde sets whether a lone `~...~` run is
// accepted as strikethrough (spec §6.1, default true).
func WithGfmStrikethroughSingleTilde(enabled bool) Option {
	return func(c *Config) { c.gfmStrikethroughSingleTilde = enabled }
}

// WithMathTextSingleDollar sets whether a lone `$...$` run is accepted
// as inline math (spec §6.1, default true).
func WithMathTextSingleDollar(enabled bool) Option {
	return func(c *Config) { c.mathTextSingleDollar = enabled }
}

// WithMdxExpressionParse installs the MDX expression parser hook (spec
// §6.1, §4.3.17).
func WithMdxExpressionParse(fn ExpressionParseFunc) Option {
	return func(c *Config) { c.mdxExpressionParse = fn }
}

// WithMdxEsmParse installs the MDX ESM parser hook (spec §6.1, §4.3.17).
func WithMdxEsmParse(fn EsmParseFunc) Option {
	return func(c *Config) { c.mdxEsmParse = fn }
}

// WithMinSpecVersion gates MDX constructs behind a minimum configured
// spec version string (e.g. "v1.2.0", compared with
// golang.org/x/mod/semver); see SPEC_FULL.md §2.
func WithMinSpecVersion(version string) Option {
	return func(c *Config) { c.specVersion = version }
}

// Constructs reports which constructs are enabled, after applying the
// spec-version gate (see gateMdxBySpecVersion).
func (c Config) Constructs() Construct {
	return gateMdxBySpecVersion(c.constructs, c.specVersion)
}

// Enabled reports whether a single construct is enabled.
func (c Config) Enabled(construct Construct) bool {
	return c.Constructs().Has(construct)
}

func (c Config) GfmStrikethroughSingleTilde() bool { return c.gfmStrikethroughSingleTilde }
func (c Config) MathTextSingleDollar() bool        { return c.mathTextSingleDollar }
func (c Config) MdxExpressionParse() ExpressionParseFunc { return c.mdxExpressionParse }
func (c Config) MdxEsmParse() EsmParseFunc               { return c.mdxEsmParse }
