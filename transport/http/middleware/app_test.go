package middleware_test

import (
	"context"
	"deliveryform/config"
	otelMocks "deliveryform/infras/otel/mocks"
	"deliveryform/shared/cache"
	cacheMocks "deliveryform/shared/cache/mocks"
	"deliveryform/shared/constant"
	"deliveryform/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/unavailable-dates", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
	req.Header.Set(constant.RequestHeaderUserAgent, "form-test")

	return req
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:203.0.113.7:form-test"

	tests := []struct {
		name          string
		enable        bool
		setup         func(mock *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			enable:   false,
			setup:    func(_ *cacheMocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setup: func(mock *cacheMocks.MockRedisCache) {
				mock.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				mock.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name:   "last allowed request",
			enable: true,
			setup: func(mock *cacheMocks.MockRedisCache) {
				mock.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
				mock.EXPECT().Save(gomock.Any(), key, 3, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setup: func(mock *cacheMocks.MockRedisCache) {
				mock.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, value any) error {
						*value.(*int) = 3

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache failure lets the request through",
			enable: true,
			setup: func(mock *cacheMocks.MockRedisCache) {
				mock.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "disabled cache lets the request through",
			enable: true,
			setup: func(mock *cacheMocks.MockRedisCache) {
				mock.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.ErrDisabled)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(mockCache)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), mockCache)
			recorder := httptest.NewRecorder()

			app.RateLimit()(okHandler()).ServeHTTP(recorder, newRequest())

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("issues a new id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, newRequest())

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps the incoming id", func(t *testing.T) {
		req := newRequest()
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracingAndMetrics_PassThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), nil)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.Metrics)
	router.Get("/api/deliveries", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/deliveries", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}
