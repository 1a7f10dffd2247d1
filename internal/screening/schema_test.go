package screening

import (
	"reflect"
	"testing"
)

func TestDecodeScoreResult(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantScore   float64
		wantBullets []string
	}{
		{
			name:        "high fit keeps bullets",
			raw:         `{"score":4.5,"bullets":["a","b","c"]}`,
			wantScore:   4.5,
			wantBullets: []string{"a", "b", "c"},
		},
		{
			name:        "low fit forces bullets empty",
			raw:         `{"score":2,"bullets":["should not appear"]}`,
			wantScore:   2,
			wantBullets: []string{},
		},
		{
			name:        "not json degrades to safe default",
			raw:         "not json",
			wantScore:   1,
			wantBullets: []string{},
		},
		{
			name:        "score above range clamped",
			raw:         `{"score":99,"bullets":["x"]}`,
			wantScore:   5,
			wantBullets: []string{"x"},
		},
		{
			name:        "negative score clamped",
			raw:         `{"score":-3}`,
			wantScore:   1,
			wantBullets: []string{},
		},
		{
			name:        "absent score defaults to 1",
			raw:         `{"bullets":["x"]}`,
			wantScore:   1,
			wantBullets: []string{},
		},
		{
			name:        "string score coerced",
			raw:         `{"score":"4.2","bullets":["ok"]}`,
			wantScore:   4.2,
			wantBullets: []string{"ok"},
		},
		{
			name:        "non-numeric score defaults",
			raw:         `{"score":{"value":5},"bullets":["x"]}`,
			wantScore:   1,
			wantBullets: []string{},
		},
		{
			name:        "bullets truncated to five",
			raw:         `{"score":5,"bullets":["1","2","3","4","5","6","7"]}`,
			wantScore:   5,
			wantBullets: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:        "bullet garbage filtered",
			raw:         `{"score":4,"bullets":["  ok  ", "", null, {"x":1}, 7]}`,
			wantScore:   4,
			wantBullets: []string{"ok", "7"},
		},
		{
			name:        "bullets non-list treated as empty",
			raw:         `{"score":4.8,"bullets":"strong candidate"}`,
			wantScore:   4.8,
			wantBullets: []string{},
		},
		{
			name:        "empty object",
			raw:         `{}`,
			wantScore:   1,
			wantBullets: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeScoreResult(tt.raw)
			if got.Score != tt.wantScore {
				t.Fatalf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.ScoreOutOf != ScoreOutOf {
				t.Fatalf("score_out_of = %d, want %d", got.ScoreOutOf, ScoreOutOf)
			}
			if !reflect.DeepEqual(got.Bullets, tt.wantBullets) {
				t.Fatalf("bullets = %#v, want %#v", got.Bullets, tt.wantBullets)
			}
		})
	}
}

func TestDecodeScoreResultInvariants(t *testing.T) {
	adversarial := []string{
		``, `null`, `[]`, `"a string"`, `{"score":null}`, `{"score":"NaN"}`,
		`{"score":1e308}`, `{"score":-1e308}`, `{"score":3.9,"bullets":["x"]}`,
		`{"score":true,"bullets":true}`, `{"bullets":[[],{},null]}`,
	}
	for _, raw := range adversarial {
		got := DecodeScoreResult(raw)
		if got.Score < 1 || got.Score > 5 {
			t.Fatalf("score out of range for %q: %v", raw, got.Score)
		}
		if got.Score < 4 && len(got.Bullets) != 0 {
			t.Fatalf("bullets present below threshold for %q: %#v", raw, got.Bullets)
		}
		if got.Bullets == nil {
			t.Fatalf("bullets must never be nil for %q", raw)
		}
	}
}
