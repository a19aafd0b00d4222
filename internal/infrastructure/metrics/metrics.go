// Package metrics expone contadores Prometheus del Record Store y de las colecciones en memoria.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/supermercado-dashboard/internal/domain"
)

// Metrics agrupa los colectores. Cada instancia usa su propio registry.
type Metrics struct {
	registry     *prometheus.Registry
	storeOps     *prometheus.CounterVec
	collection   *prometheus.GaugeVec
	version      *prometheus.GaugeVec
	validationKO *prometheus.CounterVec
}

// New registra los colectores en un registry nuevo (más los de proceso y Go runtime).
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Operaciones del Record Store por colección, operación y resultado.",
		}, []string{"collection", "operation", "result"}),
		collection: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Registros en memoria por colección.",
		}, []string{"collection"}),
		version: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_version",
			Help:      "Versión de la colección en memoria (incrementa con cada cambio).",
		}, []string{"collection"}),
		validationKO: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Formularios rechazados por entidad.",
		}, []string{"entity"}),
	}
	reg.MustRegister(
		m.storeOps, m.collection, m.version, m.validationKO,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry devuelve el registry para promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// StoreOperation implementa recordstore.Recorder.
func (m *Metrics) StoreOperation(collection, operation string, err error) {
	m.storeOps.WithLabelValues(collection, operation, result(err)).Inc()
}

// CollectionChanged registra tamaño y versión de una colección en memoria.
func (m *Metrics) CollectionChanged(collection string, version uint64, size int) {
	m.collection.WithLabelValues(collection).Set(float64(size))
	m.version.WithLabelValues(collection).Set(float64(version))
}

// ValidationFailed cuenta un formulario rechazado.
func (m *Metrics) ValidationFailed(entity string) {
	m.validationKO.WithLabelValues(entity).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCorruptSlot):
		return "corrupt"
	default:
		return "error"
	}
}

