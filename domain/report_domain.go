package domain

var (
	MessageSuccessGetStatistics = "statistics retrieved successfully"
	MessageFailedGetStatistics  = "failed to retrieve statistics"
)

type Statistics struct {
	TotalUsers            int64            `json:"totalUsers"`
	ApprovedCenters       int64            `json:"approvedCenters"`
	PendingCenters        int64            `json:"pendingCenters"`
	BloodEntriesByStatus  map[string]int64 `json:"bloodEntriesByStatus"`
	BloodRequestsByStatus map[string]int64 `json:"bloodRequestsByStatus"`
	AvailableUnitsByType  map[string]int64 `json:"availableUnitsByType"`
}
