package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("SIMILARITY_TOP_K", "")
	t.Setenv("EXCERPT_MAX_CHARS", "")
	t.Setenv("SUMMARY_MAX_WORDS", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("NATS_SUBJECT", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default api port 8080, got %q", cfg.APIPort)
	}
	if cfg.SimilarityTopK != 3 {
		t.Fatalf("expected default similarity top k 3, got %d", cfg.SimilarityTopK)
	}
	if cfg.ExcerptMaxChars != 5000 {
		t.Fatalf("expected default excerpt max 5000, got %d", cfg.ExcerptMaxChars)
	}
	if cfg.SummaryMaxWords != 200 {
		t.Fatalf("expected default summary words 200, got %d", cfg.SummaryMaxWords)
	}
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected default rate limit 50, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.NATSSubject != "documents.analyzed" {
		t.Fatalf("expected default subject, got %q", cfg.NATSSubject)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("SIMILARITY_TOP_K", "5")
	t.Setenv("API_RATE_LIMIT_RPS", "12.5")
	t.Setenv("API_MAX_CONCURRENT", "8")

	cfg := Load()
	if cfg.APIPort != "9999" {
		t.Fatalf("expected api port override, got %q", cfg.APIPort)
	}
	if cfg.SimilarityTopK != 5 {
		t.Fatalf("expected similarity top k 5, got %d", cfg.SimilarityTopK)
	}
	if cfg.APIRateLimitRPS != 12.5 {
		t.Fatalf("expected rate limit 12.5, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIMaxConcurrent != 8 {
		t.Fatalf("expected max concurrent 8, got %d", cfg.APIMaxConcurrent)
	}
}

func TestLoadFallsBackOnUnparsableValues(t *testing.T) {
	t.Setenv("SIMILARITY_TOP_K", "not-a-number")
	t.Setenv("API_RATE_LIMIT_RPS", "also-not")

	cfg := Load()
	if cfg.SimilarityTopK != 3 {
		t.Fatalf("expected fallback 3, got %d", cfg.SimilarityTopK)
	}
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected fallback 50, got %v", cfg.APIRateLimitRPS)
	}
}
