package stats

// Totals holds the raw aggregate counts as read from the store.
type Totals struct {
	TotalEmployees int64
	TotalRecords   int64
	ByType         map[string]int64
}

type StatsResponse struct {
	TotalEmployees   int64            `json:"total_employees"`
	TotalRecords     int64            `json:"total_records"`
	AttendanceByType map[string]int64 `json:"attendance_by_type"`
}
