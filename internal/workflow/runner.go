package workflow

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"photostrip/internal/captions"
	"photostrip/internal/compose"
	"photostrip/internal/config"
	"photostrip/internal/failure"
	"photostrip/internal/geometry"
	"photostrip/internal/intake"
	"photostrip/internal/logging"
	"photostrip/internal/render"
)

type stageFunc func(ctx context.Context, logger *slog.Logger, r *run) error

type pipelineStage struct {
	name string
	fn   stageFunc
}

// Runner executes the pipeline against a configuration.
type Runner struct {
	cfg      *config.Config
	prompter Prompter
	logger   *slog.Logger
	loadFace FaceLoader
	stages   []pipelineStage
}

// NewRunner builds a Runner. prompter may be nil when every request supplies
// captions and an output name.
func NewRunner(cfg *config.Config, prompter Prompter, logger *slog.Logger) *Runner {
	r := &Runner{
		cfg:      cfg,
		prompter: prompter,
		logger:   logging.NewComponentLogger(logger, "workflow"),
		loadFace: render.LoadFace,
	}
	r.stages = []pipelineStage{
		{"validate", r.validate},
		{"unify", r.unify},
		{"layout", r.plan},
		{"captions", r.collect},
		{"render", r.render},
		{"crop", r.crop},
		{"overlay", r.overlay},
		{"concatenate", r.concatenate},
	}
	return r
}

// Run produces one composite. It stops at the first failing stage and
// returns that stage's error.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if r.cfg == nil {
		return Result{}, failure.Wrap(failure.ErrConfiguration, "workflow", "run", "configuration is required", nil)
	}
	runID := strings.TrimSpace(req.RunID)
	if runID == "" {
		runID = uuid.NewString()
	}
	state := &run{req: req, result: Result{RunID: runID}}

	started := time.Now()
	for _, stage := range r.stages {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := r.execute(ctx, stage, state); err != nil {
			return Result{}, err
		}
	}
	r.logger.Info("composite written",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.String("output_path", state.result.OutputPath),
		logging.Int64("output_bytes", state.result.Bytes),
		logging.Duration("run_duration", time.Since(started)),
	)
	return state.result, nil
}

func (r *Runner) execute(ctx context.Context, stage pipelineStage, state *run) error {
	stageCtx := logging.WithStage(ctx, stage.name)
	stageLogger := logging.WithContext(stageCtx, r.logger)
	stageStart := time.Now()
	stageLogger.Debug("stage started", logging.String(logging.FieldEventType, "stage_start"))

	if err := stage.fn(stageCtx, stageLogger, state); err != nil {
		logging.ErrorWithContext(stageLogger, "stage failed", "stage_failure",
			logging.String(logging.FieldErrorKind, failure.Kind(err)),
			logging.String(logging.FieldErrorHint, hintFor(err)),
			logging.Error(err),
		)
		return err
	}

	stageLogger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("stage_duration", time.Since(stageStart)),
	)
	return nil
}

func (r *Runner) validate(_ context.Context, logger *slog.Logger, state *run) error {
	photos, err := intake.Validate(state.req.Paths)
	if err != nil {
		return err
	}
	for _, p := range photos {
		logger.Debug("photo accepted",
			logging.String(logging.FieldPhoto, p.Ordinal),
			logging.String("path", p.Path),
			logging.String("format", p.Format),
			logging.Int("width", p.Width),
			logging.Int("height", p.Height),
		)
	}
	state.photos = photos
	state.result.Photos = photos
	return nil
}

func (r *Runner) unify(_ context.Context, logger *slog.Logger, state *run) error {
	unified, err := geometry.Unify(intake.Sizes(state.photos))
	if err != nil {
		return failure.Wrap(failure.ErrValidation, "unify", "", "compute common size", err)
	}
	state.unified = unified
	logger.Debug("unified size", logging.Int("width", unified.X), logging.Int("height", unified.Y))
	return nil
}

func (r *Runner) plan(_ context.Context, logger *slog.Logger, state *run) error {
	layout := geometry.NewLayout(state.unified)
	if layout.FontSize <= 0 {
		return failure.Wrap(failure.ErrValidation, "layout", "", "photos are too small for a caption", nil)
	}
	state.layout = layout
	state.result.Layout = layout
	logger.Info("layout derived",
		logging.Int("font_size", layout.FontSize),
		logging.Int("char_limit", layout.MaxChars()),
		logging.Float64("char_limit_exact", layout.CharLimit),
	)
	return nil
}

func (r *Runner) collect(ctx context.Context, logger *slog.Logger, state *run) error {
	limit := state.layout.CharLimit
	switch {
	case state.req.Captions != nil:
		if err := captions.CheckCaptions(state.req.Captions, limit); err != nil {
			return err
		}
		state.captions = append([]string(nil), state.req.Captions...)
	case r.prompter != nil:
		collected, err := r.prompter.Collect(ctx, limit)
		if err != nil {
			return err
		}
		state.captions = collected
	default:
		return failure.Wrap(failure.ErrConfiguration, "captions", "", "no captions supplied and no prompter available", nil)
	}

	switch name := strings.TrimSpace(state.req.OutputName); {
	case name != "":
		if !captions.ValidName(name) {
			return failure.Wrap(failure.ErrValidation, "captions", "output name",
				fmt.Sprintf("%q may contain only letters, digits and underscores", name), nil)
		}
		state.name = name
	case r.prompter != nil:
		name, err := r.prompter.OutputName(ctx)
		if err != nil {
			return err
		}
		state.name = name
	default:
		return failure.Wrap(failure.ErrConfiguration, "captions", "output name", "no output name supplied and no prompter available", nil)
	}
	state.result.Captions = state.captions
	logger.Info("captions accepted",
		logging.Bool("prompted", state.req.Captions == nil),
		logging.Any("captions", state.captions),
		logging.String("output_name", state.name),
	)
	return nil
}

func (r *Runner) render(_ context.Context, _ *slog.Logger, state *run) error {
	face, err := r.loadFace(r.cfg.Caption.FontPath, state.layout.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	renderer := render.NewRenderer(face, state.layout, uint8(r.cfg.Caption.BackgroundAlpha))
	state.strips = make([]*image.NRGBA, 0, len(state.captions))
	for _, caption := range state.captions {
		state.strips = append(state.strips, renderer.Strip(caption))
	}
	return nil
}

func (r *Runner) crop(ctx context.Context, _ *slog.Logger, state *run) error {
	state.panels = make([]*image.RGBA, 0, len(state.photos))
	for _, photo := range state.photos {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := photo.Decode()
		if err != nil {
			return err
		}
		state.panels = append(state.panels, compose.CenterCrop(img, state.unified))
	}
	return nil
}

func (r *Runner) overlay(_ context.Context, _ *slog.Logger, state *run) error {
	at := geometry.StripOffset(state.unified)
	for i, panel := range state.panels {
		compose.Overlay(panel, state.strips[i], at)
	}
	return nil
}

func (r *Runner) concatenate(_ context.Context, _ *slog.Logger, state *run) error {
	panels := make([]image.Image, 0, len(state.panels))
	for _, p := range state.panels {
		panels = append(panels, p)
	}
	composite, err := compose.Concatenate(panels, state.unified)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.cfg.Output.Dir, 0o755); err != nil {
		return failure.Wrap(failure.ErrIO, "concatenate", "ensure output dir", r.cfg.Output.Dir, err)
	}
	path := r.cfg.OutputPath(state.name)
	written, err := compose.WriteJPEG(path, composite, r.cfg.Output.JPEGQuality)
	if err != nil {
		return err
	}
	state.result.OutputPath = path
	state.result.Size = composite.Bounds().Size()
	state.result.Bytes = written
	return nil
}

func hintFor(err error) string {
	switch failure.Kind(err) {
	case "not_found":
		return "check the photo paths"
	case "validation":
		return "check the photos and captions"
	case "configuration":
		return "run photostrip config validate"
	case "render":
		return "check caption.font_path"
	case "io":
		return "check that the output directory is writable"
	default:
		return "check logs for details"
	}
}
