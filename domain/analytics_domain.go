package domain

var (
	MessageSuccessGetSummary     = "summary retrieved successfully"
	MessageSuccessGetPending     = "pending requests by disaster retrieved successfully"
	MessageSuccessGetUtilization = "resource utilization retrieved successfully"
	MessageFailedGetSummary      = "failed to retrieve summary"
	MessageFailedGetPending      = "failed to retrieve pending requests by disaster"
	MessageFailedGetUtilization  = "failed to retrieve resource utilization"
)

type (
	SummaryTotals struct {
		Disasters   int64 `json:"disasters"`
		Requests    int64 `json:"requests"`
		Allocations int64 `json:"allocations"`
		Volunteers  int64 `json:"volunteers"`
	}

	DisasterReadiness struct {
		DisasterID     string `json:"disaster_id"`
		DisasterType   string `json:"disaster_type"`
		TotalRequested int64  `json:"total_requested"`
		TotalAllocated int64  `json:"total_allocated"`
	}

	SummaryResponse struct {
		Totals    SummaryTotals        `json:"totals"`
		Readiness []*DisasterReadiness `json:"readiness"`
	}

	PendingByDisaster struct {
		DisasterID      string `json:"disaster_id"`
		DisasterType    string `json:"disaster_type"`
		PendingRequests int64  `json:"pending_requests"`
		HighPriority    int64  `json:"high_priority"`
		OpenAllocations int64  `json:"open_allocations"`
	}

	ResourceUtilization struct {
		ResourceType      string  `json:"resource_type"`
		StorageCity       string  `json:"storage_city,omitempty"`
		QuantityAvailable int64   `json:"quantity_available"`
		QuantityAllocated int64   `json:"quantity_allocated"`
		UtilizationRate   float64 `json:"utilization_rate"`
	}
)
