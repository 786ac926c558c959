package service

import (
	"linkstats/internal/domain"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewStatsService, NewRedirectService)

const (
	ReasonInvalidGroupingKey = "INVALID_GROUPING_KEY"
	ReasonInvalidDays        = "INVALID_DAYS"
	ReasonInvalidLimit       = "INVALID_LIMIT"
	ReasonLinkNotFound       = "LINK_NOT_FOUND"
	ReasonStatsUnavailable   = "STATS_UNAVAILABLE"
	ReasonRedirectFailed     = "REDIRECT_FAILED"
)

// toStatsError maps a usecase error to its transport error. Validation
// errors carry the offending parameter in the "field" metadata key.
func toStatsError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidGroupingKey):
		return errors.BadRequest(ReasonInvalidGroupingKey, err.Error()).
			WithMetadata(map[string]string{"field": "groupBy"})
	case errors.Is(err, domain.ErrInvalidDays):
		return errors.BadRequest(ReasonInvalidDays, err.Error()).
			WithMetadata(map[string]string{"field": "days"})
	case errors.Is(err, domain.ErrLinkNotFound):
		return errors.NotFound(ReasonLinkNotFound, "link not found")
	}

	var se *errors.Error
	if errors.As(err, &se) {
		return se
	}
	return errors.InternalServer(ReasonStatsUnavailable, "failed to retrieve statistics").WithCause(err)
}
