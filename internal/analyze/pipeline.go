package analyze

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kozuong/Car-AI/internal/lang"
)

// VisionTextGenerator produces the raw bilingual analysis text from an
// encoded image and a prompt. One attempt, no retry at this layer; a failure
// here aborts the whole request.
type VisionTextGenerator interface {
	AnalyzeImage(ctx context.Context, image []byte, mime, prompt string) (string, error)
}

// Result holds the two assembled records for one analyzed image.
type Result struct {
	EN CarRecord `json:"result_en"`
	VI CarRecord `json:"result_vi"`
}

// Pipeline runs the full extraction for one request: dual generation,
// segmentation, normalization, reconciliation, derived attributes, assembly.
// It is stateless apart from the resolver's shared caches and safe for
// concurrent use.
type Pipeline struct {
	Vision   VisionTextGenerator
	Resolver *Resolver

	primary   lang.Table
	secondary lang.Table
}

func NewPipeline(vision VisionTextGenerator, resolver *Resolver) *Pipeline {
	primary, secondary := lang.Pair()
	return &Pipeline{
		Vision:    vision,
		Resolver:  resolver,
		primary:   primary,
		secondary: secondary,
	}
}

// Analyze turns one encoded image into the bilingual result. The two
// generation calls run concurrently; if either fails the sibling is
// cancelled and the request aborts.
func (p *Pipeline) Analyze(ctx context.Context, image []byte, mime string) (Result, error) {
	var textEN, textVI string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := p.Vision.AnalyzeImage(gctx, image, mime, p.primary.Prompt)
		if err != nil {
			return &CollaboratorError{Collaborator: "vision[en]", Err: err}
		}
		textEN = t
		return nil
	})
	g.Go(func() error {
		t, err := p.Vision.AnalyzeImage(gctx, image, mime, p.secondary.Prompt)
		if err != nil {
			return &CollaboratorError{Collaborator: "vision[vi]", Err: err}
		}
		textVI = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return p.Extract(ctx, textEN, textVI)
}

// Extract runs the engine over two already-generated raw texts. Split out
// from Analyze so tests and diagnostics can feed text directly.
func (p *Pipeline) Extract(ctx context.Context, textEN, textVI string) (Result, error) {
	fieldsEN := Normalize(Segment(textEN, p.primary))
	fieldsVI := Normalize(Segment(textVI, p.secondary))

	// Shadow copy of the Vietnamese extraction before reconciliation
	// touches it.
	viOrig := fieldsVI

	fieldsEN, fieldsVI = Reconcile(fieldsEN, fieldsVI, p.secondary)

	carName := joinName(fieldsEN.Brand, fieldsEN.Model)

	count := p.Resolver.ResolveProductionCount(ctx, carName, fieldsEN.NumberProduced)
	fieldsEN.NumberProduced = count
	fieldsVI.NumberProduced = count

	if rarity := p.Resolver.ResolveRarity(count); rarity != "" {
		fieldsEN.Rarity = rarity
		fieldsVI.Rarity = rarity
	}

	logoURL := p.Resolver.ResolveLogo(ctx, NormalizeBrand(carName))

	en := AssembleEN(fieldsEN, p.primary, logoURL)
	vi, err := AssembleVI(fieldsVI, viOrig, fieldsEN.Features, p.secondary, logoURL)
	if err != nil {
		return Result{}, err
	}
	return Result{EN: en, VI: vi}, nil
}
