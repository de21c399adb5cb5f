package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"calk-kg/adapters/rates"
	"calk-kg/core/currency"
	"calk-kg/internal/errors"
	"calk-kg/internal/logging"
)

const ratesKey = "currency-rates"

// currencyRates answers from the cache while the entry is younger than
// the TTL, otherwise from the National Bank. An upstream failure yields
// the built-in table marked as fallback; it is not cached.
func (s *Server) currencyRates(ctx context.Context) *rates.Response {
	now := s.now()

	e, ok, err := s.cache.Get(ctx, ratesKey)
	if err != nil {
		logging.Warn("rate cache read failed", zap.Error(err))
	}
	if ok {
		var resp rates.Response
		if err := json.Unmarshal(e.Value, &resp); err == nil {
			resp.Cached = true
			resp.CacheAge = fmt.Sprintf("%ds", int(e.Age(now).Seconds()))
			return &resp
		}
		logging.Warn("discarding unreadable cache entry", zap.String("key", ratesKey))
	}

	daily, err := s.upstream.Fetch(ctx)
	if err != nil {
		logging.Warn("serving fallback rates", zap.Error(err))
		snap := currency.DefaultSnapshot(now)
		resp := rates.NewResponse(snap.Date(), snap.Rates(), now)
		resp.Fallback = true
		resp.Error = errorMessage(err)
		return resp
	}

	resp := rates.NewResponse(daily.Date, daily.Rates, now)
	body, err := json.Marshal(resp)
	if err == nil {
		err = s.cache.Set(ctx, ratesKey, body, s.config.CacheTTL)
	}
	if err != nil {
		logging.Warn("rate cache write failed", zap.Error(err))
	}
	return resp
}

func errorMessage(err error) string {
	if e, ok := errors.As(err); ok {
		return e.Message
	}
	return err.Error()
}

func (s *Server) handleCurrencyRates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.currencyRates(r.Context()))
}

// proxyRates feeds the proxy's own answer to the engine
type proxyRates struct {
	s *Server
}

func (p proxyRates) Fetch(ctx context.Context) currency.Outcome {
	resp := p.s.currencyRates(ctx)
	now := p.s.now()
	if resp.Fallback {
		return currency.Fallback{Snap: currency.DefaultSnapshot(now), Reason: stderrors.New(resp.Error)}
	}
	snap := currency.Merge(currency.DefaultSnapshot(now), resp.CurrencyRates(), resp.Date, currency.SourceFetched)
	return currency.Fetched{Snap: snap}
}
