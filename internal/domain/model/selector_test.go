package model

import (
	"testing"

	"model-gateway/services/gemini-adapter/internal/utils/httpclients/gemini"
)

func record(name string, methods ...string) gemini.ModelRecord {
	if methods == nil {
		methods = []string{"generateContent"}
	}
	return gemini.ModelRecord{
		Name:                       name,
		SupportedGenerationMethods: methods,
	}
}

func TestSelectModelsPrefersStableOverPreview(t *testing.T) {
	records := []gemini.ModelRecord{
		record("models/gemini-2.5-pro-preview-03-25"),
		record("models/gemini-2.5-pro"),
	}

	selected := SelectModels(records)
	if len(selected) != 1 {
		t.Fatalf("expected 1 model, got %d", len(selected))
	}
	if selected[0].ID != "gemini-2.5-pro" {
		t.Fatalf("expected gemini-2.5-pro, got %s", selected[0].ID)
	}
}

func TestSelectModelsLexicographicTieBreak(t *testing.T) {
	records := []gemini.ModelRecord{
		record("models/gemini-2.5-flash-002"),
		record("models/gemini-2.5-flash-001"),
	}

	selected := SelectModels(records)
	if len(selected) != 2 {
		// 001 and 002 are not date stamps, they stay separate families
		t.Fatalf("expected 2 models, got %d", len(selected))
	}

	records = []gemini.ModelRecord{
		record("models/gemini-2.5-pro-06-05"),
		record("models/gemini-2.5-pro-03-25"),
	}

	selected = SelectModels(records)
	if len(selected) != 1 {
		t.Fatalf("expected 1 model, got %d", len(selected))
	}
	if selected[0].ID != "gemini-2.5-pro-03-25" {
		t.Fatalf("expected lexicographically smaller id, got %s", selected[0].ID)
	}
}

func TestSelectModelsExcludesTTS(t *testing.T) {
	records := []gemini.ModelRecord{
		record("models/gemini-2.5-flash-preview-tts"),
		record("models/gemini-2.5-flash-TTS"),
		record("models/gemini-2.5-flash"),
	}

	selected := SelectModels(records)
	if len(selected) != 1 {
		t.Fatalf("expected 1 model, got %d", len(selected))
	}
	if selected[0].ID != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash, got %s", selected[0].ID)
	}
}

func TestSelectModelsFilters(t *testing.T) {
	records := []gemini.ModelRecord{
		// missing prefix, wrong capability, old version
		record("gemini-2.5-flash"),
		record("models/gemini-2.5-flash", "embedContent"),
		record("models/gemini-1.5-flash"),
		record("models/gemini-2.5-flash"),
	}

	selected := SelectModels(records)
	if len(selected) != 1 {
		t.Fatalf("expected 1 model, got %d", len(selected))
	}
	if selected[0].ID != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash, got %s", selected[0].ID)
	}
	if !selected[0].IsDefault {
		t.Fatalf("expected gemini-2.5-flash to be marked default")
	}
}

func TestSelectModelsPreservesLiteFamily(t *testing.T) {
	records := []gemini.ModelRecord{
		record("models/gemini-2.5-flash"),
		record("models/gemini-2.5-flash-lite"),
		record("models/gemini-2.5-flash-lite-preview-06-17"),
	}

	selected := SelectModels(records)
	if len(selected) != 2 {
		t.Fatalf("expected 2 models, got %d", len(selected))
	}
	if selected[0].ID != "gemini-2.5-flash" || selected[1].ID != "gemini-2.5-flash-lite" {
		t.Fatalf("unexpected selection: %s, %s", selected[0].ID, selected[1].ID)
	}
}

func TestSelectModelsFirstSeenGroupOrder(t *testing.T) {
	records := []gemini.ModelRecord{
		record("models/gemini-2.5-pro-preview-05-06"),
		record("models/gemini-2.5-flash"),
		record("models/gemini-2.5-pro"),
	}

	selected := SelectModels(records)
	if len(selected) != 2 {
		t.Fatalf("expected 2 models, got %d", len(selected))
	}
	// pro family was seen first, so it leads even though its first member
	// was a preview build
	if selected[0].ID != "gemini-2.5-pro" {
		t.Fatalf("expected gemini-2.5-pro first, got %s", selected[0].ID)
	}
	if selected[1].ID != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash second, got %s", selected[1].ID)
	}
}

func TestSelectModelsDefaultsTokenLimits(t *testing.T) {
	records := []gemini.ModelRecord{
		{
			Name:                       "models/gemini-2.5-flash",
			SupportedGenerationMethods: []string{"generateContent"},
		},
		{
			Name:                       "models/gemini-2.5-pro",
			DisplayName:                "Gemini 2.5 Pro",
			InputTokenLimit:            2_097_152,
			OutputTokenLimit:           8_192,
			SupportedGenerationMethods: []string{"generateContent"},
		},
	}

	selected := SelectModels(records)
	if len(selected) != 2 {
		t.Fatalf("expected 2 models, got %d", len(selected))
	}

	flash := selected[0]
	if flash.MaxInputTokens != DefaultMaxInputTokens || flash.MaxOutputTokens != DefaultMaxOutputTokens {
		t.Fatalf("expected default limits, got %d/%d", flash.MaxInputTokens, flash.MaxOutputTokens)
	}
	if flash.DisplayName != "gemini-2.5-flash" {
		t.Fatalf("expected display name to fall back to id, got %s", flash.DisplayName)
	}

	pro := selected[1]
	if pro.MaxInputTokens != 2_097_152 || pro.MaxOutputTokens != 8_192 {
		t.Fatalf("expected reported limits, got %d/%d", pro.MaxInputTokens, pro.MaxOutputTokens)
	}
	if pro.DisplayName != "Gemini 2.5 Pro" {
		t.Fatalf("unexpected display name %s", pro.DisplayName)
	}
}

func TestBaseFamilyName(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"gemini-2.5-pro", "gemini-2.5-pro"},
		{"gemini-2.5-pro-preview-03-25", "gemini-2.5-pro"},
		{"gemini-2.5-pro-03-25", "gemini-2.5-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.5-flash-lite-preview-06-17", "gemini-2.5-flash-lite"},
		{"gemini-3.0-flash-preview", "gemini-3.0-flash"},
	}
	for _, tc := range cases {
		if got := baseFamilyName(tc.id); got != tc.want {
			t.Fatalf("baseFamilyName(%s) = %s, want %s", tc.id, got, tc.want)
		}
	}
}
