package phonecheck

import (
	"context"
	"time"

	"storefront_backend/platform/apperr"
	"storefront_backend/platform/config"
	"storefront_backend/platform/logger"
	"storefront_backend/platform/phone"

	"golang.org/x/sync/errgroup"
)

// Service exposes the phone utilities to HTTP callers.
type Service struct {
	region      string
	concurrency int
	log         *logger.Logger
}

func NewService(cfg config.PhoneConfig, log *logger.Logger) *Service {
	concurrency := cfg.GetPhoneBatchConcurrency()
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		region:      cfg.GetPhoneDefaultRegion(),
		concurrency: concurrency,
		log:         log,
	}
}

// Inspect normalizes a single number and attaches parsing details.
func (s *Service) Inspect(input string) phone.Details {
	return phone.Inspect(input, s.region)
}

// Validate normalizes input and classifies the result. It never fails.
func (s *Service) Validate(input string) ValidateResponse {
	normalized := phone.Normalize(input)
	return ValidateResponse{
		Phone:      input,
		Normalized: normalized,
		Valid:      phone.IsValidVietnamesePhone(normalized),
	}
}

// Verify is Inspect restricted to Vietnamese mobile numbers.
func (s *Service) Verify(input string) (phone.Details, error) {
	details := s.Inspect(input)
	if !details.Valid {
		return details, apperr.Validation("phone is not a valid Vietnamese mobile number").
			WithOp("phonecheck.Verify").
			WithDetails(map[string]string{"normalized": details.Normalized})
	}
	return details, nil
}

// InspectBatch inspects every input with bounded concurrency and returns the
// results in input order. Only cancellation of ctx makes it fail.
func (s *Service) InspectBatch(ctx context.Context, inputs []string) (BatchResponse, error) {
	if len(inputs) > maxBatchSize {
		return BatchResponse{}, apperr.BadRequest("too many phone numbers in batch").WithOp("phonecheck.InspectBatch")
	}

	start := time.Now()
	results := make([]phone.Details, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Inspect(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchResponse{}, apperr.Wrap(apperr.KindInternal, "batch inspection aborted", err).WithOp("phonecheck.InspectBatch")
	}

	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
		}
	}

	s.log.WithContext(ctx).PhoneBatch(len(results), validCount, float64(time.Since(start).Microseconds())/1000)

	return BatchResponse{Results: results, ValidCount: validCount}, nil
}
