package dto

// UploadImageResult 上传结果
type UploadImageResult struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	FileType  string `json:"file_type"`
	FileSize  int64  `json:"file_size"`
	UsageType string `json:"usage_type"`
}
