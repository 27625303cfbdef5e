package mdconfig

import "golang.org/x/mod/semver"

// mdxIntroducedAt is the spec version at which the MDX constructs became
// available, per SPEC_FULL.md §2's semver-gating decision. A Config whose
// WithMinSpecVersion is set to something older silently drops them,
// rather than failing to compile — mirroring how an old CommonMark-only
// consumer should simply never see MDX events.
const mdxExtensionConstructs = MdxFlowExpression | MdxTextExpression | MdxJsxFlow | MdxJsxText | MdxEsm

var mdxIntroducedAt = "v1.1.0"

// gateMdxBySpecVersion drops the MDX construct bits from flags when
// specVersion is set, valid, and older than mdxIntroducedAt. An empty or
// invalid specVersion disables no gating (grounded on
// core/types/validation.go's semver format validator, which likewise
// treats an invalid string as the caller's problem rather than panicking).
func gateMdxBySpecVersion(flags Construct, specVersion string) Construct {
	if specVersion == "" || !semver.IsValid(specVersion) {
		return flags
	}
	if semver.Compare(specVersion, mdxIntroducedAt) < 0 {
		return flags.Without(mdxExtensionConstructs)
	}
	return flags
}
