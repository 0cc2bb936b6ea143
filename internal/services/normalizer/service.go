// Package normalizer is the facade the orchestration layer calls: it routes
// raw responses to the right generation's mapper, logs diagnostics for
// unclassifiable payloads and records outcome metrics. It adds no mapping
// semantics of its own.
package normalizer

import (
	"errors"

	"github.com/kevin07696/gateway-normalizer/internal/adapters/posnet"
	"github.com/kevin07696/gateway-normalizer/internal/adapters/posnetv1"
	"github.com/kevin07696/gateway-normalizer/internal/domain/models"
	"github.com/kevin07696/gateway-normalizer/internal/domain/ports"
	pkgerrors "github.com/kevin07696/gateway-normalizer/pkg/errors"
	"github.com/kevin07696/gateway-normalizer/pkg/observability"
	"go.uber.org/zap"
)

// Service routes raw gateway responses to the mapper for their generation.
// Safe for concurrent use: mappers are stateless and registered once.
type Service struct {
	mappers map[ports.Generation]ports.ResponseMapper
	logger  *zap.Logger
}

// New creates a normalizer service with both generation mappers registered
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		mappers: map[ports.Generation]ports.ResponseMapper{
			ports.GenerationPosnet:   posnet.NewResponseMapper(),
			ports.GenerationPosnetV1: posnetv1.NewResponseMapper(),
		},
		logger: logger,
	}
}

// Mapper returns the response mapper registered for a generation
func (s *Service) Mapper(generation ports.Generation) (ports.ResponseMapper, error) {
	mapper, ok := s.mappers[generation]
	if !ok {
		return nil, pkgerrors.NewValidationError("generation", "unknown gateway generation: "+string(generation))
	}
	return mapper, nil
}

// MapPaymentResponse normalizes an authorization/sale response
func (s *Service) MapPaymentResponse(generation ports.Generation, raw map[string]any, order *ports.Order) (*models.TransactionResult, error) {
	mapper, err := s.Mapper(generation)
	if err != nil {
		return nil, err
	}
	result, err := mapper.MapPaymentResponse(raw, order)
	if err != nil {
		s.recordError(generation, "payment", err)
		return nil, err
	}
	s.record(generation, "payment", mapper, result)
	return result, nil
}

// Map3DPaymentResponse normalizes a 3D authentication-stage response merged
// with an optional authorization-stage response
func (s *Service) Map3DPaymentResponse(generation ports.Generation, authRaw, paymentRaw map[string]any, order *ports.Order) (*models.ThreeDPaymentResult, error) {
	mapper, err := s.Mapper(generation)
	if err != nil {
		return nil, err
	}
	result, err := mapper.Map3DPaymentResponse(authRaw, paymentRaw, order)
	if err != nil {
		s.recordError(generation, "3d_payment", err)
		return nil, err
	}
	s.record(generation, "3d_payment", mapper, &result.TransactionResult)
	return result, nil
}

// MapStatusResponse normalizes a transaction-inquiry response
func (s *Service) MapStatusResponse(generation ports.Generation, raw map[string]any) (*models.StatusResult, error) {
	mapper, err := s.Mapper(generation)
	if err != nil {
		return nil, err
	}
	result, err := mapper.MapStatusResponse(raw)
	if err != nil {
		s.recordError(generation, "status", err)
		return nil, err
	}
	s.record(generation, "status", mapper, &result.TransactionResult)
	return result, nil
}

// MapCancelResponse normalizes a cancellation response
func (s *Service) MapCancelResponse(generation ports.Generation, raw map[string]any) (*models.TransactionResult, error) {
	mapper, err := s.Mapper(generation)
	if err != nil {
		return nil, err
	}
	result, err := mapper.MapCancelResponse(raw)
	if err != nil {
		s.recordError(generation, "cancel", err)
		return nil, err
	}
	s.record(generation, "cancel", mapper, result)
	return result, nil
}

// MapRefundResponse normalizes a refund response
func (s *Service) MapRefundResponse(generation ports.Generation, raw map[string]any) (*models.TransactionResult, error) {
	mapper, err := s.Mapper(generation)
	if err != nil {
		return nil, err
	}
	result, err := mapper.MapRefundResponse(raw)
	if err != nil {
		s.recordError(generation, "refund", err)
		return nil, err
	}
	s.record(generation, "refund", mapper, result)
	return result, nil
}

func (s *Service) record(generation ports.Generation, operation string, mapper ports.ResponseMapper, result *models.TransactionResult) {
	observability.RecordNormalization(string(generation), operation, string(result.Status))

	switch result.Status {
	case models.StatusError:
		observability.RecordUnclassifiableResponse(string(generation), operation)
		s.logger.Warn("Raw response could not be classified",
			zap.String("generation", string(generation)),
			zap.String("operation", operation),
		)
	case models.StatusDeclined:
		if gwErr := mapper.DeclineError(result); gwErr != nil {
			s.logger.Info("Gateway declined the transaction",
				zap.String("generation", string(generation)),
				zap.String("operation", operation),
				zap.String("code", gwErr.Code),
				zap.String("category", string(gwErr.Category)),
				zap.String("gateway_message", gwErr.GatewayMessage),
			)
		}
	}
}

func (s *Service) recordError(generation ports.Generation, operation string, err error) {
	var unmapped *pkgerrors.UnmappedCodeError
	if errors.As(err, &unmapped) {
		observability.RecordUnmappedCode(string(generation), unmapped.Table)
		s.logger.Error("Gateway code missing from mandatory mapping table",
			zap.String("generation", string(generation)),
			zap.String("operation", operation),
			zap.String("table", unmapped.Table),
			zap.String("code", unmapped.Code),
		)
		return
	}
	s.logger.Error("Failed to normalize gateway response",
		zap.String("generation", string(generation)),
		zap.String("operation", operation),
		zap.Error(err),
	)
}
