// Package metrics records response assembly in Prometheus.
//
// Observer implements responder.Observer. Install it with
// responder.WithObserver and register its collectors on any
// prometheus.Registerer:
//
//	obs, err := metrics.NewObserver(prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	resp := responder.NewResponder(responder.WithObserver(obs))
//
// Metric naming follows Prometheus conventions: the respweaver_ namespace,
// a _total suffix for counters and a _bytes suffix for size histograms.
package metrics
