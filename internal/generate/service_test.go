package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/assemble"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/history"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
)

// fakeClassifier returns a canned model response, fences included,
// the way a real completion often arrives.
type fakeClassifier struct {
	response string
	err      error
}

func (f *fakeClassifier) ClassifyMenu(ctx context.Context, menuText string) (string, error) {
	return f.response, f.err
}

type fakeExtractor struct {
	text        string
	err         error
	sawDeadline bool
}

func (f *fakeExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	_, f.sawDeadline = ctx.Deadline()
	return f.text, f.err
}

// fakeSink fails for names listed in failOn.
type fakeSink struct {
	failOn map[string]bool
	puts   []string
}

func (f *fakeSink) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if f.failOn[name] {
		return "", errors.New("connection reset")
	}
	f.puts = append(f.puts, name)
	return "https://cdn.example.com/" + name, nil
}

func testRequest() Request {
	return Request{
		Restaurant: assemble.Restaurant{Name: "Le Bistrot"},
		Menu: map[string][]menu.RawItem{
			"entrees": {{Name: "Soupe", Price: menu.RawPrice{Amount: 8.5, Valid: true}}},
		},
	}
}

func TestGenerateFromMappingDefaults(t *testing.T) {
	repo := history.NewInMemoryRepository()
	service := NewService(nil, nil, repo, nil, "")

	result, err := service.GenerateFromMapping(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Bundle.Documents) != 2 {
		t.Fatalf("expected v1+v2 by default, got %d documents", len(result.Bundle.Documents))
	}
	names := []string{result.Bundle.Documents[0].Name, result.Bundle.Documents[1].Name}
	if names[0] != "menus.json" || names[1] != "articles.json" {
		t.Fatalf("unexpected document names: %v", names)
	}

	g, err := repo.Get(context.Background(), result.GenerationID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != history.StatusGenerated || g.Articles != 1 {
		t.Fatalf("unexpected record: %+v", g)
	}
}

func TestGenerateRejectsEmptyMenu(t *testing.T) {
	service := NewService(nil, nil, history.NewInMemoryRepository(), nil, "")

	req := testRequest()
	req.Menu = nil
	if _, err := service.GenerateFromMapping(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateRejectsUnknownVariant(t *testing.T) {
	service := NewService(nil, nil, history.NewInMemoryRepository(), nil, "")

	req := testRequest()
	req.Variants = []VariantRequest{{Name: "v9"}}
	if _, err := service.GenerateFromMapping(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateSharedBaseSharesIdentifiers(t *testing.T) {
	service := NewService(nil, nil, history.NewInMemoryRepository(), nil, "")

	req := testRequest()
	req.Variants = []VariantRequest{
		{Name: "v1", Base: 4000},
		{Name: "v2", Base: 4000},
	}
	result, err := service.GenerateFromMapping(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	v1 := string(result.Bundle.Documents[0].Data)
	v2 := string(result.Bundle.Documents[1].Data)
	if !strings.Contains(v1, `"articleId": "4000"`) || !strings.Contains(v2, `"articleId":"4000"`) {
		t.Fatal("variants sharing a base must share identifiers")
	}
}

func TestGenerateFromPDF(t *testing.T) {
	classifier := &fakeClassifier{
		response: "```json\n{\"plats\": [{\"name\": \"Risotto\", \"price\": \"19,50\"}]}\n```",
	}
	extractor := &fakeExtractor{text: "RISOTTO ..... 19,50"}
	service := NewService(classifier, extractor, history.NewInMemoryRepository(), nil, "")

	req := Request{Restaurant: assemble.Restaurant{Name: "Le Bistrot"}}
	result, err := service.GenerateFromPDF(context.Background(), []byte("%PDF-1.4"), req)
	if err != nil {
		t.Fatal(err)
	}

	if result.Classification == nil {
		t.Fatal("classification must be returned for review")
	}
	if result.Stats.Articles != 1 {
		t.Fatalf("expected 1 article, got %d", result.Stats.Articles)
	}
}

func TestGenerateFromPDFBoundsPipelineDuration(t *testing.T) {
	classifier := &fakeClassifier{
		response: `{"plats": [{"name": "Risotto", "price": 19.5}]}`,
	}
	extractor := &fakeExtractor{text: "RISOTTO ..... 19,50"}
	service := NewService(classifier, extractor, history.NewInMemoryRepository(), nil, "")

	req := Request{Restaurant: assemble.Restaurant{Name: "Le Bistrot"}}
	if _, err := service.GenerateFromPDF(context.Background(), []byte("%PDF-1.4"), req); err != nil {
		t.Fatal(err)
	}
	if !extractor.sawDeadline {
		t.Fatal("OCR must run under a deadline even when the caller sets none")
	}
}

func TestGenerateFromPDFMalformedClassification(t *testing.T) {
	classifier := &fakeClassifier{response: `["not", "a", "mapping"]`}
	extractor := &fakeExtractor{text: "whatever"}
	service := NewService(classifier, extractor, history.NewInMemoryRepository(), nil, "")

	req := Request{Restaurant: assemble.Restaurant{Name: "Le Bistrot"}}
	_, err := service.GenerateFromPDF(context.Background(), []byte("%PDF-1.4"), req)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateFromPDFExtractorFailure(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("unreadable PDF")}
	service := NewService(&fakeClassifier{}, extractor, history.NewInMemoryRepository(), nil, "")

	req := Request{Restaurant: assemble.Restaurant{Name: "Le Bistrot"}}
	_, err := service.GenerateFromPDF(context.Background(), []byte("%PDF-1.4"), req)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestPublishReportsFailuresWithoutError(t *testing.T) {
	repo := history.NewInMemoryRepository()
	sink := &fakeSink{failOn: map[string]bool{"articles.json": true}}
	service := NewService(nil, nil, repo, sink, "")

	result, err := service.GenerateFromMapping(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	report, err := service.Publish(context.Background(), result.GenerationID, result.Bundle)
	if err != nil {
		t.Fatalf("sink failures must land in the report, not the error: %v", err)
	}
	if report.Failed != 1 || len(report.Results) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	g, _ := repo.Get(context.Background(), result.GenerationID)
	if g.Status != history.StatusPublishFailed {
		t.Fatalf("expected PUBLISH_FAILED, got %s", g.Status)
	}
}

func TestPublishSuccessUpdatesStatus(t *testing.T) {
	repo := history.NewInMemoryRepository()
	sink := &fakeSink{}
	service := NewService(nil, nil, repo, sink, "")

	result, err := service.GenerateFromMapping(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	report, err := service.Publish(context.Background(), result.GenerationID, result.Bundle)
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed != 0 {
		t.Fatalf("unexpected failures: %+v", report)
	}

	g, _ := repo.Get(context.Background(), result.GenerationID)
	if g.Status != history.StatusPublished {
		t.Fatalf("expected PUBLISHED, got %s", g.Status)
	}
}
