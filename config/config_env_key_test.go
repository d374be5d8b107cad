package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"userName": "user",
		},
		"search": map[string]any{
			"maxRadiusMiles": 100,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "SEARCH_MAXRADIUSMILES", want: "search.maxRadiusMiles"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsSearchAndEntitlement(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Search.DefaultRadiusMiles != 25 {
		t.Fatalf("DefaultRadiusMiles = %v, want 25", cfg.Search.DefaultRadiusMiles)
	}
	if cfg.Search.MaxRadiusMiles != 100 {
		t.Fatalf("MaxRadiusMiles = %v, want 100", cfg.Search.MaxRadiusMiles)
	}
	if cfg.Search.MaxResults != 50 {
		t.Fatalf("MaxResults = %v, want 50", cfg.Search.MaxResults)
	}
	if cfg.Entitlement.BasicMonthlyQuota != 5 {
		t.Fatalf("BasicMonthlyQuota = %v, want 5", cfg.Entitlement.BasicMonthlyQuota)
	}
}
