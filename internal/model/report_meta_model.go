package model

// ReportMeta is the summary the auditor pulls out of a stored report.
// Fields not found stay empty.
type ReportMeta struct {
	RoomID     string `json:"roomId"`
	CleanerID  string `json:"cleanerId"`
	TotalScore string `json:"totalScore"`
	FinishedAt string `json:"finishedAt"`
}

// StoredReport is one entry of the auditor's listing.
type StoredReport struct {
	Filename string     `json:"filename"`
	ModTime  string     `json:"mtime"`
	Meta     ReportMeta `json:"meta"`
}
