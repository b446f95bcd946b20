package cache

import (
	"net/http"
	"testing"
	"time"
)

func TestCacheable(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusNotFound, true},
		{http.StatusGone, true},
		{http.StatusBadRequest, false},
		{http.StatusInternalServerError, false},
		{http.StatusNoContent, false},
	}

	for _, tt := range tests {
		if got := Cacheable(tt.status); got != tt.want {
			t.Errorf("Cacheable(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCacheEntry_Negative(t *testing.T) {
	if NewEntry(http.StatusOK, []byte("{}")).Negative() {
		t.Error("200 entry should not be negative")
	}
	if !NewEntry(http.StatusNotFound, nil).Negative() {
		t.Error("404 entry should be negative")
	}
	if !NewEntry(http.StatusGone, nil).Negative() {
		t.Error("410 entry should be negative")
	}
}

func TestCacheEntry_Age(t *testing.T) {
	entry := &Entry{CachedAt: time.Now().Add(-time.Minute)}
	if age := entry.Age(); age < time.Minute || age > 2*time.Minute {
		t.Errorf("Age() = %v, want about 1m", age)
	}
}
