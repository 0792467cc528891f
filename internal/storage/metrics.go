package storage

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики адаптеров хранения. Нулевой *Metrics допустим:
// все методы тогда ничего не делают.
type Metrics struct {
	positionOps *prometheus.CounterVec
	chunkOps    *prometheus.CounterVec
	chunkBytes  prometheus.Histogram
}

// NewMetrics создает метрики и регистрирует их в reg.
// Для глобального регистра передайте prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		positionOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coords",
			Subsystem: "storage",
			Name:      "position_ops_total",
			Help:      "Операции с позициями по типу и результату.",
		}, []string{"op", "result"}),
		chunkOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coords",
			Subsystem: "storage",
			Name:      "chunk_ops_total",
			Help:      "Операции хранилища чанков по типу.",
		}, []string{"op"}),
		chunkBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coords",
			Subsystem: "storage",
			Name:      "chunk_stored_bytes",
			Help:      "Размер записанного содержимого чанка после сжатия.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.positionOps, m.chunkOps, m.chunkBytes)
	}
	return m
}

func (m *Metrics) positionOp(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.positionOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) chunkOp(op string) {
	if m == nil {
		return
	}
	m.chunkOps.WithLabelValues(op).Inc()
}

func (m *Metrics) chunkStored(n int) {
	if m == nil {
		return
	}
	m.chunkBytes.Observe(float64(n))
}
