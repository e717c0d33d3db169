package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	PageViewsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_page_views_total",
			Help: "Total number of page views.",
		},
		[]string{"path"},
	)
	JobPostsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_job_posts_created_total",
			Help: "Total number of created job posts.",
		},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_job_applications_total",
			Help: "Total number of submitted job applications.",
		},
	)
	SignInsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_sign_ins_total",
			Help: "Total number of successful sign-ins.",
		},
	)
	DirectoryRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "site_directory_request_duration_seconds",
			Help:       "Duration of requests to the account directory.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(PageViewsCounter)
	prometheus.MustRegister(JobPostsCreatedCounter)
	prometheus.MustRegister(ApplicationsCounter)
	prometheus.MustRegister(SignInsCounter)
	prometheus.MustRegister(DirectoryRequestDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
