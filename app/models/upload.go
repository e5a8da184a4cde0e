package models

// UploadResult is the /upload response payload for a single stored file.
type UploadResult struct {
	ContentType string `json:"content_type"`
	FilePath    string `json:"file_path"`
	Filename    string `json:"filename"`
	PublicURL   string `json:"public_url"`
	UploadType  string `json:"upload_type"`
	UploadedBy  string `json:"uploaded_by"`
}

// UploadedInspectionFile is one successfully processed file of an
// inspection upload batch.
type UploadedInspectionFile struct {
	Filename       string `json:"filename"`
	FilePath       string `json:"file_path"`
	PublicURL      string `json:"public_url"`
	ImageID        string `json:"image_id"`
	InspectionCode string `json:"inspection_code"`
	Status         string `json:"status"`
}

// InspectionUploadReport is the /inspections/upload-multiple response:
// per-file outcomes plus batch totals.
type InspectionUploadReport struct {
	UploadedFiles     []UploadedInspectionFile `json:"uploaded_files"`
	FailedFiles       []string                 `json:"failed_files"`
	TotalUploaded     int                      `json:"total_uploaded"`
	TotalFailed       int                      `json:"total_failed"`
	InspectionRecords []string                 `json:"inspection_records"`
}
