package mdconfig

import "testing"

func TestPresets(t *testing.T) {
	cm := PresetCommonMark()
	if cm.Has(GfmTable) {
		t.Fatalf("CommonMark preset must not include GfmTable")
	}
	gfm := PresetGFM()
	if !gfm.Has(GfmTable) || !gfm.Has(BlockQuote) {
		t.Fatalf("GFM preset must include GfmTable and base constructs")
	}
	mdx := PresetMDX()
	if mdx.Has(HtmlFlow) || mdx.Has(Autolink) || mdx.Has(CodeIndented) {
		t.Fatalf("MDX preset must disable HtmlFlow/Autolink/CodeIndented")
	}
	if !mdx.Has(MdxJsxFlow) {
		t.Fatalf("MDX preset must include MdxJsxFlow")
	}
}

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON([]byte(`{"preset": "gfm", "disable": ["gfmTable"]}`))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if cfg.Enabled(GfmTable) {
		t.Fatalf("gfmTable should have been disabled")
	}
	if !cfg.Enabled(GfmStrikethrough) {
		t.Fatalf("gfmStrikethrough should remain enabled")
	}
}

func TestLoadJSONRejectsUnknownField(t *testing.T) {
	if _, err := LoadJSON([]byte(`{"nonsense": true}`)); err == nil {
		t.Fatalf("expected schema validation to reject unknown field")
	}
}

func TestMinSpecVersionGatesMdx(t *testing.T) {
	cfg := New(WithPreset(PresetMDX()), WithMinSpecVersion("v1.0.0"))
	if cfg.Enabled(MdxJsxFlow) {
		t.Fatalf("MDX constructs should be gated off below mdxIntroducedAt")
	}
}
