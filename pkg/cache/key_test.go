package cache

import (
	"net/url"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "lookup",
			key:  Key{Endpoint: "/enheter/112233445"},
			want: "brreg:enheter/112233445",
		},
		{
			name: "trailing slash trimmed",
			key:  Key{Endpoint: "/enheter/112233445/roller/"},
			want: "brreg:enheter/112233445/roller",
		},
		{
			name: "query sorted",
			key: Key{
				Endpoint: "/enheter",
				Query:    url.Values{"size": {"2"}, "navn": {"Sesam"}},
			},
			want: "brreg:enheter?navn=Sesam&size=2",
		},
		{
			name: "query escaped",
			key: Key{
				Endpoint: "/enheter",
				Query:    url.Values{"navn": {"Sesam & Co"}},
			},
			want: "brreg:enheter?navn=Sesam+%26+Co",
		},
		{
			name: "empty query ignored",
			key:  Key{Endpoint: "/underenheter/776655441", Query: url.Values{}},
			want: "brreg:underenheter/776655441",
		},
		{
			name: "zero key",
			key:  Key{},
			want: "brreg:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_DistinctPaths(t *testing.T) {
	keys := []Key{
		{Endpoint: "/enheter/112233445"},
		{Endpoint: "/enheter/112233445/roller"},
		{Endpoint: "/underenheter/112233445"},
	}

	seen := map[string]bool{}
	for _, k := range keys {
		s := k.String()
		if seen[s] {
			t.Fatalf("duplicate key %q", s)
		}
		seen[s] = true
	}
}
