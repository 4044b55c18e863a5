package core

import (
	"context"
	"strconv"
)

type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

// requestTags builds the tag set shared by the request counter and the
// duration histogram. status_code is only present once a response arrived.
func requestTags(operation string, status string, statusCode int) map[string]string {
	tags := map[string]string{
		"operation": operation,
		"status":    status,
	}
	if statusCode > 0 {
		tags["status_code"] = strconv.Itoa(statusCode)
	}
	return tags
}

func cloneTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return map[string]string{}
	}
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}

var _ MetricsRecorder = NopMetricsRecorder{}
