package models

// Read-side report shapes. These are computed by scanning the relational
// rows; they carry no state of their own.

type StageCount struct {
	Stage Stage `json:"stage"`
	Count int64 `json:"count"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type DashboardSummary struct {
	OpenPositions       int64             `json:"openPositions"`
	TotalApplications   int64             `json:"totalApplications"`
	InterviewsScheduled int64             `json:"interviewsScheduled"`
	OffersExtended      int64             `json:"offersExtended"`
	CandidatesByStage   []StageCount      `json:"candidatesByStage"`
	JobsByDepartment    []DepartmentCount `json:"jobsByDepartment"`
}

type TimeToHire struct {
	AverageDays float64 `json:"averageDays"`
}
