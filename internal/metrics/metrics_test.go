package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		m := NewManager()

		Convey("When question batches are observed", func() {
			m.ObserveQuestionSource("live")
			m.ObserveQuestionSource("fallback")
			m.ObserveQuestionSource("fallback")

			Convey("Then they are counted per source", func() {
				So(testutil.ToFloat64(m.questionSource.WithLabelValues("live")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.questionSource.WithLabelValues("fallback")), ShouldEqual, 2.0)
			})
		})

		Convey("When sessions end", func() {
			m.ObserveSession("finished", 112, true)
			m.ObserveSession("timed_out", 97, true)
			m.ObserveSession("error", 0, false)

			Convey("Then outcomes are counted and only scored sessions hit the histogram", func() {
				So(testutil.ToFloat64(m.quizSessions.WithLabelValues("finished")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.quizSessions.WithLabelValues("error")), ShouldEqual, 1.0)
				So(testutil.CollectAndCount(m.quizScore), ShouldEqual, 1)

				families, err := m.Registry().Gather()
				So(err, ShouldBeNil)
				var count uint64
				for _, f := range families {
					if f.GetName() == "brainydate_quiz_score" {
						count = f.GetMetric()[0].GetHistogram().GetSampleCount()
					}
				}
				So(count, ShouldEqual, uint64(2))
			})
		})

		Convey("When LLM requests are observed", func() {
			m.ObserveLLMRequest("iq-questions", "ok", 2*time.Second)
			m.ObserveLLMRequest("iq-questions", "rate_limit", 500*time.Millisecond)

			Convey("Then a single purpose series exists", func() {
				So(testutil.CollectAndCount(m.llmDuration), ShouldEqual, 1)
			})
		})

		Convey("When written to a textfile", func() {
			m.ObserveQuestionSource("live")
			path := filepath.Join(t.TempDir(), "brainydate.prom")
			So(m.WriteTextfile(path), ShouldBeNil)

			Convey("Then the file holds the exposition text", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(strings.Contains(string(data), `brainydate_question_source_total{source="live"} 1`), ShouldBeTrue)
			})
		})

		Convey("When no textfile is configured", func() {
			Convey("Then writing is a no-op", func() {
				So(m.WriteTextfile(""), ShouldBeNil)
			})
		})
	})
}

func TestManagerOptions(t *testing.T) {
	Convey("Given custom options", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithNamespace("test"), WithRegistry(reg), WithLatencyBuckets([]float64{1, 2}))

		Convey("Then collectors use them", func() {
			So(m.Registry(), ShouldEqual, reg)
			m.ObserveQuestionSource("live")
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			names := []string{}
			for _, f := range families {
				names = append(names, f.GetName())
			}
			So(names, ShouldContain, "test_question_source_total")
			So(names, ShouldNotContain, "brainydate_question_source_total")
		})

		Convey("Then empty options keep the defaults", func() {
			d := NewManager(WithNamespace(""), WithLatencyBuckets(nil), WithRegistry(nil))
			So(d.namespace, ShouldEqual, "brainydate")
			So(d.Registry(), ShouldNotBeNil)
		})
	})
}
