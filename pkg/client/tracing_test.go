package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/Sternrassler/brreg-client/pkg/query"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedClient(t *testing.T, mockURL string) (*Client, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	nop := zerolog.Nop()
	c, err := New(Config{
		BaseURL:        mockURL,
		UserAgent:      DefaultUserAgent,
		Logger:         &nop,
		TracerProvider: provider,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, recorder
}

func findSpans(spans []sdktrace.ReadOnlySpan, name string) []sdktrace.ReadOnlySpan {
	var out []sdktrace.ReadOnlySpan
	for _, s := range spans {
		if s.Name() == name {
			out = append(out, s)
		}
	}
	return out
}

func attrValue(s sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing_LookupSpan(t *testing.T) {
	mock := newMock(t)
	mock.SetFixture("/enheter/112233445", http.StatusOK, "enhet")
	c, recorder := newTracedClient(t, mock.URL())

	if _, err := c.GetEnhet(context.Background(), "112 233 445"); err != nil {
		t.Fatal(err)
	}

	spans := recorder.Ended()
	lookups := findSpans(spans, "brreg.GetEnhet")
	if len(lookups) != 1 {
		t.Fatalf("expected 1 brreg.GetEnhet span, got %d", len(lookups))
	}
	span := lookups[0]

	if v, ok := attrValue(span, "brreg.orgnr"); !ok || v.AsString() != "112233445" {
		t.Errorf("brreg.orgnr = %v, want 112233445", v.AsString())
	}
	if span.Status().Code == codes.Error {
		t.Errorf("unexpected error status: %s", span.Status().Description)
	}

	// The HTTP client span is a child of the operation span.
	var child bool
	for _, s := range spans {
		if s.Parent().SpanID() == span.SpanContext().SpanID() {
			child = true
		}
	}
	if !child {
		t.Error("expected an HTTP span under brreg.GetEnhet")
	}
}

func TestTracing_ErrorStatus(t *testing.T) {
	mock := newMock(t)
	mock.SetStatus("/enheter/112233445", http.StatusInternalServerError)
	c, recorder := newTracedClient(t, mock.URL())

	if _, err := c.GetEnhet(context.Background(), "112233445"); err == nil {
		t.Fatal("expected an error")
	}

	lookups := findSpans(recorder.Ended(), "brreg.GetEnhet")
	if len(lookups) != 1 {
		t.Fatalf("expected 1 brreg.GetEnhet span, got %d", len(lookups))
	}
	if got := lookups[0].Status().Code; got != codes.Error {
		t.Errorf("status = %v, want Error", got)
	}
	if len(lookups[0].Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}

func TestTracing_SearchPageSpans(t *testing.T) {
	mock := newMock(t)
	mock.SetFixture("/enheter?navn=Sesam&size=2", http.StatusOK, "search_enheter_page0")
	mock.SetFixture("/enheter?navn=Sesam&page=1&size=2", http.StatusOK, "search_enheter_page1")
	c, recorder := newTracedClient(t, mock.URL())

	cursor, err := c.SearchEnhet(context.Background(), query.EnhetQuery{
		Paging: query.Paging{Size: query.Int(2)},
		Navn:   "Sesam",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := cursor.Page(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	searches := findSpans(recorder.Ended(), "brreg.SearchEnhet")
	if len(searches) != 2 {
		t.Fatalf("expected 2 brreg.SearchEnhet spans, got %d", len(searches))
	}

	pages := map[int64]bool{}
	for _, s := range searches {
		v, ok := attrValue(s, "brreg.page")
		if !ok {
			t.Fatal("missing brreg.page attribute")
		}
		pages[v.AsInt64()] = true
	}
	if !pages[0] || !pages[1] {
		t.Errorf("pages traced = %v, want 0 and 1", pages)
	}
}
