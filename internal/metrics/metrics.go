package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stackunderflow_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stackunderflow_http_request_duration_seconds",
		Help:    "Time from request receipt to response, by route pattern.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"route"})

	QuestionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stackunderflow_questions_total",
		Help: "Questions currently held in the store.",
	})

	AnswersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stackunderflow_answers_created_total",
		Help: "Answers successfully attached to a question.",
	})
)
