package biz

import (
	"linkstats/internal/classifier"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(
	NewClickRecorder,
	NewHitUsecase,
	NewStatsUsecase,
	classifier.NewDefaultRefererClassifier,
)
