package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{
			name: "english lookup",
			lang: "en",
			key:  "tabs.habits",
			want: "Habits",
		},
		{
			name: "russian lookup",
			lang: "ru",
			key:  "tabs.habits",
			want: "Привычки",
		},
		{
			name: "unknown language falls back to english",
			lang: "de",
			key:  "tabs.habits",
			want: "Habits",
		},
		{
			name: "unknown key returns the key",
			lang: "en",
			key:  "tabs.bogus",
			want: "tabs.bogus",
		},
		{
			name: "key missing from russian falls back to english",
			lang: "ru",
			key:  "tabs.habits",
			want: "Привычки",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Supported("en") || !Supported("ru") {
		t.Error("shipped languages should be supported")
	}
	if Supported("de") {
		t.Error("Supported(de) = true, want false")
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en := messages["en"]
	for lang, table := range messages {
		if lang == "en" {
			continue
		}
		for key := range en {
			if _, ok := table[key]; !ok {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
		for key := range table {
			if _, ok := en[key]; !ok {
				t.Errorf("language %q has extra key %q", lang, key)
			}
		}
	}
}
