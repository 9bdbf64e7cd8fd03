package platform

import (
	"sort"
	"strings"

	"myrendezvous/domain"

	dto "github.com/prometheus/client_model/go"
)

// metricAttributes flattens metric families into one attribute per series, named
// "metrics.<family>" with a "{k=v,...}" suffix for labelled series. Counters, gauges and
// untyped series report their value; summaries and histograms their sample count.
func metricAttributes(families []*dto.MetricFamily) []domain.Attribute {
	var out []domain.Attribute
	for _, family := range families {
		for _, m := range family.GetMetric() {
			value, ok := metricValue(family.GetType(), m)
			if !ok {
				continue
			}
			out = append(out, domain.Attribute{
				Name:        MetricsPrefix + family.GetName() + labelSuffix(m.GetLabel()),
				Description: family.GetHelp(),
				Value:       value,
			})
		}
	}
	return out
}

func metricValue(kind dto.MetricType, m *dto.Metric) (any, bool) {
	switch kind {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue(), true
	case dto.MetricType_SUMMARY:
		return m.GetSummary().GetSampleCount(), true
	case dto.MetricType_HISTOGRAM, dto.MetricType_GAUGE_HISTOGRAM:
		return m.GetHistogram().GetSampleCount(), true
	default:
		return nil, false
	}
}

func labelSuffix(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, l.GetName()+"="+l.GetValue())
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}
