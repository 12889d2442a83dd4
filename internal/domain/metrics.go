package domain

// QueryMetrics is the operational snapshot served by GET /v1/metrics/queries.
type QueryMetrics struct {
	TotalQueries int64   `json:"total_queries"`
	ErrorRate    float64 `json:"error_rate"`
	CacheHitRate float64 `json:"cache_hit_rate"`
	Period       string  `json:"period"`
}
