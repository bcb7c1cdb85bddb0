package generate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/assemble"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/classify"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/history"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/menu"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/ocr"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/storage"
)

// Error kinds the handler maps to status codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream failure")
)

// pdfPipelineTimeout bounds the OCR plus classification round-trip for
// one upload. The OpenAI client has its own HTTP timeout; tesseract
// does not, so the context carries the deadline for both.
const pdfPipelineTimeout = 3 * time.Minute

type Service struct {
	classifier classify.Client
	extractor  ocr.Extractor
	repo       history.Repository
	sink       storage.Sink
	bannerDir  string
}

func NewService(classifier classify.Client, extractor ocr.Extractor, repo history.Repository, sink storage.Sink, bannerDir string) *Service {
	return &Service{
		classifier: classifier,
		extractor:  extractor,
		repo:       repo,
		sink:       sink,
		bannerDir:  bannerDir,
	}
}

// VariantRequest selects a document variant, optionally overriding its
// identifier base so downstream ranges stay non-overlapping.
type VariantRequest struct {
	Name string `json:"name" binding:"required"`
	Base int    `json:"base,omitempty"`
}

// Request is the manual-entry generation input.
type Request struct {
	Restaurant assemble.Restaurant       `json:"restaurant"`
	Menu       map[string][]menu.RawItem `json:"menu"`
	Variants   []VariantRequest          `json:"variants,omitempty"`
}

// Result is one completed generation: the artifacts plus what the
// pipeline counted along the way.
type Result struct {
	GenerationID   string                    `json:"generation_id"`
	Bundle         assemble.Bundle           `json:"-"`
	Stats          menu.BuildStats           `json:"stats"`
	Classification map[string][]menu.RawItem `json:"classification,omitempty"`
}

// GenerateFromMapping runs the core pipeline on an already classified
// mapping. The builder runs once per distinct identifier base; variants
// sharing a base share article identifiers by design.
func (s *Service) GenerateFromMapping(ctx context.Context, req Request) (*Result, error) {
	if len(req.Menu) == 0 {
		return nil, fmt.Errorf("%w: menu mapping is empty", ErrInvalidInput)
	}
	if req.Restaurant.Name == "" {
		return nil, fmt.Errorf("%w: restaurant name is required", ErrInvalidInput)
	}

	variants, err := resolveVariants(req.Variants)
	if err != nil {
		return nil, err
	}

	builds := make(map[int]menu.MenuDocument)
	var stats menu.BuildStats
	first := true
	for _, v := range variants {
		if _, ok := builds[v.Base]; ok {
			continue
		}
		doc, st := menu.Build(req.Menu, v.Base)
		builds[v.Base] = doc
		if first {
			stats = st
			first = false
		}
	}

	var bundle assemble.Bundle
	for _, v := range variants {
		doc, err := assemble.Assemble(builds[v.Base], req.Restaurant, v)
		if err != nil {
			return nil, err
		}
		bundle.Documents = append(bundle.Documents, doc)
	}
	bundle.Images = req.Restaurant.Banners

	result := &Result{
		GenerationID: uuid.New().String(),
		Bundle:       bundle,
		Stats:        stats,
	}
	s.record(ctx, result, req, variants)
	return result, nil
}

// GenerateFromPDF runs the full path: OCR, classification, ingestion
// validation, then the same pipeline as manual entry. The raw
// classification is returned so the caller can review and correct it.
func (s *Service) GenerateFromPDF(ctx context.Context, pdf []byte, req Request) (*Result, error) {
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: empty PDF upload", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, pdfPipelineTimeout)
	defer cancel()

	text, err := s.extractor.ExtractText(ctx, pdf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	text = ocr.CleanMenuText(text)

	raw, err := s.classifier.ClassifyMenu(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	classified, err := classify.ParseClassification(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req.Menu = classified
	result, err := s.GenerateFromMapping(ctx, req)
	if err != nil {
		return nil, err
	}
	result.Classification = classified
	return result, nil
}

// Publish pushes a bundle to the sink and returns the per-file report.
// Upload failures live in the report, not in the error: generation
// success is reported independently of delivery.
func (s *Service) Publish(ctx context.Context, generationID string, bundle assemble.Bundle) (storage.PushReport, error) {
	if s.sink == nil {
		return storage.PushReport{}, errors.New("no sink configured")
	}
	if len(bundle.Documents) == 0 {
		return storage.PushReport{}, fmt.Errorf("%w: nothing to publish", ErrInvalidInput)
	}

	report := storage.Push(ctx, s.sink, bundle, s.bannerDir)

	if generationID != "" {
		status := history.StatusPublished
		var reason *string
		if report.Failed > 0 {
			status = history.StatusPublishFailed
			msg := fmt.Sprintf("%d of %d uploads failed", report.Failed, len(report.Results))
			reason = &msg
		}
		if err := s.repo.UpdateStatus(ctx, generationID, status, reason); err != nil {
			log.Printf("generate: could not update generation %s: %v", generationID, err)
		}
	}
	return report, nil
}

// GetGeneration looks up one recorded generation.
func (s *Service) GetGeneration(ctx context.Context, id string) (*history.Generation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) record(ctx context.Context, result *Result, req Request, variants []assemble.Variant) {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, v.Name)
	}
	docs := make([]string, 0, len(result.Bundle.Documents))
	for _, d := range result.Bundle.Documents {
		docs = append(docs, d.Name)
	}

	g := &history.Generation{
		ID:         result.GenerationID,
		Restaurant: req.Restaurant.Name,
		Variants:   names,
		Status:     history.StatusGenerated,
		Articles:   result.Stats.Articles,
		Dropped:    result.Stats.Dropped,
		Unknown:    result.Stats.UnknownCategories,
		Documents:  docs,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, g); err != nil {
		log.Printf("generate: could not record generation %s: %v", g.ID, err)
	}
}

func resolveVariants(requested []VariantRequest) ([]assemble.Variant, error) {
	if len(requested) == 0 {
		return assemble.Defaults(), nil
	}

	variants := make([]assemble.Variant, 0, len(requested))
	for _, r := range requested {
		var v assemble.Variant
		switch r.Name {
		case "v1":
			v = assemble.V1()
		case "v2":
			v = assemble.V2()
		default:
			return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, r.Name)
		}
		if r.Base != 0 {
			v.Base = r.Base
		}
		variants = append(variants, v)
	}
	return variants, nil
}
