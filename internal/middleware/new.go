package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"smarttaskai/internal/model"
	"smarttaskai/pkg/gotrue"
	"smarttaskai/pkg/log"
)

const (
	scopeCacheSize   = 1024
	limiterCacheSize = 1024
)

type Middleware struct {
	l    log.Logger
	auth *gotrue.Client

	// scopes caches verified access tokens so hot request paths skip
	// the auth provider round trip.
	scopes   *lru.Cache[string, model.Scope]
	limiters *lru.Cache[string, *rate.Limiter]

	rateLimit rate.Limit
	burst     int
}

func New(l log.Logger, auth *gotrue.Client, ratePerMinute int) Middleware {
	scopes, _ := lru.New[string, model.Scope](scopeCacheSize)
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)

	if ratePerMinute <= 0 {
		ratePerMinute = 10
	}

	return Middleware{
		l:         l,
		auth:      auth,
		scopes:    scopes,
		limiters:  limiters,
		rateLimit: rate.Limit(float64(ratePerMinute) / 60.0),
		burst:     ratePerMinute,
	}
}
