// Package resizer orchestrates the resize pipeline: resolve the source URL,
// derive the output key, short-circuit on an existing rendition, otherwise
// fetch, transform and store.
package resizer

import (
	"context"

	"github.com/imgfit/imgfit/internal/errs"
	"github.com/imgfit/imgfit/internal/imaging"
	"github.com/imgfit/imgfit/internal/logger"
	"github.com/imgfit/imgfit/internal/objstore"
	"github.com/imgfit/imgfit/internal/s3url"
)

// Request is one resize job. Mode is the wire spelling; empty means cover.
type Request struct {
	S3URL  string `json:"s3_url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mode   string `json:"object_mode"`
}

// Result describes a completed (or cache-served) resize. Both URLs are in
// canonical s3:// form. Nothing about the job is persisted anywhere else;
// the stored object is its only durable trace.
type Result struct {
	OriginalURL string       `json:"original_url"`
	ResizedURL  string       `json:"resized_url"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Mode        imaging.Mode `json:"object_mode"`
}

// Service runs resize jobs against an object store.
type Service struct {
	store objstore.Store
	log   *logger.Logger
}

// New returns a Service backed by store.
func New(store objstore.Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.New(nil)
	}
	return &Service{store: store, log: log}
}

// Resize runs one job to completion. Validation happens before any I/O; a
// failure at any later stage aborts the pipeline without partial output —
// the rendition is stored only after the full transform succeeds.
//
// Exactly one existence check is performed, and at most one fetch and one
// put. An object already present at the derived key is trusted as a valid
// rendition, no content verification; two concurrent misses for the same job
// may both transform and store, which is benign because the output bytes are
// identical.
func (s *Service) Resize(ctx context.Context, req Request) (*Result, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return nil, errs.Newf(errs.ErrKindInvalidDimensions,
			"width and height must be positive, got %dx%d", req.Width, req.Height)
	}

	mode, err := imaging.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}

	src, err := s3url.Parse(req.S3URL)
	if err != nil {
		return nil, err
	}

	out := s3url.ObjectRef{
		Bucket: src.Bucket,
		Key:    DeriveKey(src.Key, req.Width, req.Height),
	}

	log := s.log.With().
		Str("bucket", src.Bucket).
		Str("key", src.Key).
		Str("resized_key", out.Key).
		Int("width", req.Width).
		Int("height", req.Height).
		Str("mode", string(mode)).
		Logger()

	result := &Result{
		OriginalURL: src.URL(),
		ResizedURL:  out.URL(),
		Width:       req.Width,
		Height:      req.Height,
		Mode:        mode,
	}

	exists, err := s.store.Exists(ctx, out.Bucket, out.Key)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Info("rendition already stored, serving cached result")
		return result, nil
	}

	data, _, err := s.store.Fetch(ctx, src.Bucket, src.Key)
	if err != nil {
		return nil, err
	}

	resized, contentType, err := imaging.Resize(data, req.Width, req.Height, mode)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, out.Bucket, out.Key, resized, contentType); err != nil {
		return nil, err
	}

	log.Infof("stored rendition (%d bytes, %s)", len(resized), contentType)
	return result, nil
}
