package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type (
	// сведения об ответе
	ResponseData struct {
		status int
		size   int
	}

	// LoggingResponseWriter - http.ResponseWriter, запоминающий код и размер ответа
	LoggingResponseWriter struct {
		http.ResponseWriter
		responseData *ResponseData
	}
)

func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// LogHandle - журнал входящих запросов: адрес, метод, код, длительность, размер ответа
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// без явного WriteHeader ответ уходит с 200
		responseData := &ResponseData{
			status: http.StatusOK,
		}
		lw := LoggingResponseWriter{ResponseWriter: w, responseData: responseData}

		h.ServeHTTP(&lw, r)

		logger.Infow("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", responseData.status,
			"duration", time.Since(start),
			"size", responseData.size,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
