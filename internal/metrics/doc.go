// Package metrics records build metrics for vados.
//
// Components receive a Recorder. NoopRecorder is the default and does
// nothing; PrometheusRecorder collects into its own registry, which the
// build writes out in the Prometheus text format when metrics.textfile is
// configured (suitable for the node_exporter textfile collector):
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	gen := generator.New(cfg, generator.WithRecorder(rec))
//	...
//	err := rec.WriteTextfile(cfg.Metrics.Textfile)
//
// There is no HTTP endpoint; a build is a one-shot batch.
package metrics
