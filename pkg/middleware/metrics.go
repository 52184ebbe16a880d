package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder recebe o resultado de cada requisição atendida
type RequestRecorder interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// Instrument registra contagem e latência usando o padrão da rota como label,
// evitando uma série por valor de parâmetro.
func Instrument(recorder RequestRecorder, routePattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(srw, r)

			recorder.ObserveRequest(r.Method, routePattern, srw.statusCode, time.Since(startTime))
		})
	}
}
