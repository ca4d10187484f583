// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/path", "200"))

	RecordAPIRequest("POST", "/api/v1/path", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/path", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestRecordPathSearch(t *testing.T) {
	foundBefore := testutil.ToFloat64(PathSearchesTotal.WithLabelValues("dijkstra", "found"))
	noPathBefore := testutil.ToFloat64(PathSearchesTotal.WithLabelValues("dijkstra", "no_path"))

	RecordPathSearch("dijkstra", 5*time.Millisecond, 4, "found")
	RecordPathSearch("dijkstra", 2*time.Millisecond, 0, "no_path")

	if got := testutil.ToFloat64(PathSearchesTotal.WithLabelValues("dijkstra", "found")); got != foundBefore+1 {
		t.Errorf("found counter = %v, want %v", got, foundBefore+1)
	}
	if got := testutil.ToFloat64(PathSearchesTotal.WithLabelValues("dijkstra", "no_path")); got != noPathBefore+1 {
		t.Errorf("no_path counter = %v, want %v", got, noPathBefore+1)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("meu"))

	RecordRecommendation("meu", 3*time.Millisecond)

	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("meu")); got != before+1 {
		t.Errorf("RecommendationsTotal = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("after inc: gauge = %v, want %v", got, base+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("after dec: gauge = %v, want %v", got, base)
	}
}

func TestCacheMetricsLabels(t *testing.T) {
	before := testutil.ToFloat64(CacheHits.WithLabelValues("path"))

	CacheHits.WithLabelValues("path").Inc()
	CacheSize.WithLabelValues("path").Set(42)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("path")); got != before+1 {
		t.Errorf("CacheHits = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("path")); got != 42 {
		t.Errorf("CacheSize = %v, want 42", got)
	}
}
