package metrics_test

import (
	"testing"

	"github.com/okian/boxscore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	convey.Convey("Given a metrics manager with its own registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithRegistry(reg),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("stats"),
		)

		convey.Convey("Then it should register its collectors", func() {
			convey.So(m, convey.ShouldNotBeNil)
			families, err := reg.Gather()
			convey.So(err, convey.ShouldBeNil)
			// Counters without observations are still registered; gauges and
			// histograms with label dimensions only appear once used.
			convey.So(len(families), convey.ShouldBeGreaterThan, 0)
		})
	})

	convey.Convey("Given the global metrics helpers", t, func() {
		convey.Convey("When recording business and HTTP metrics", func() {
			convey.Convey("Then they should not panic", func() {
				convey.So(func() {
					metrics.RecordGameRecorded()
					metrics.RecordValidationError()
					metrics.RecordAggregationError()
					metrics.UpdateStoreRecords("game", 3)
					metrics.ObserveStoreOp("game", "save", 0.42)
					metrics.RecordHTTPRequest("players", "GET", "200")
					metrics.RecordHTTPRequestDuration("players", "GET", "200", 1.2)
					metrics.RecordHTTPError("players", "GET", "server_error")
					metrics.UpdateSystemMemoryUsage(1024)
					metrics.UpdateSystemGoroutineCount(8)
					metrics.RecordSystemGCPauseTime(0.1)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When fetching the registry", func() {
			convey.So(metrics.GetRegistry(), convey.ShouldNotBeNil)
		})
	})
}
