package platform

import (
	"testing"

	"myrendezvous/domain"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
)

func TestMetricAttributes(t *testing.T) {
	families := []*dto.MetricFamily{
		{
			Name: proto.String("requests_total"),
			Help: proto.String("Requests served"),
			Type: dto.MetricType_COUNTER.Enum(),
			Metric: []*dto.Metric{
				{
					Label: []*dto.LabelPair{
						{Name: proto.String("method"), Value: proto.String("get")},
						{Name: proto.String("code"), Value: proto.String("200")},
					},
					Counter: &dto.Counter{Value: proto.Float64(3)},
				},
			},
		},
		{
			Name:   proto.String("temperature"),
			Type:   dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(21.5)}}},
		},
		{
			Name:   proto.String("latency_seconds"),
			Type:   dto.MetricType_HISTOGRAM.Enum(),
			Metric: []*dto.Metric{{Histogram: &dto.Histogram{SampleCount: proto.Uint64(9)}}},
		},
		{
			Name:   proto.String("gc_duration_seconds"),
			Type:   dto.MetricType_SUMMARY.Enum(),
			Metric: []*dto.Metric{{Summary: &dto.Summary{SampleCount: proto.Uint64(4)}}},
		},
	}

	assert.Equal(t, []domain.Attribute{
		{Name: "metrics.requests_total{code=200,method=get}", Description: "Requests served", Value: 3.0},
		{Name: "metrics.temperature", Value: 21.5},
		{Name: "metrics.latency_seconds", Value: uint64(9)},
		{Name: "metrics.gc_duration_seconds", Value: uint64(4)},
	}, metricAttributes(families))

	assert.Empty(t, metricAttributes(nil))
}
