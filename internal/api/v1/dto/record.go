package dto

// UploadRecordResponse is returned after a recording has been stored
type UploadRecordResponse struct {
	FileName string `json:"file_name" example:"aB3dE6gH.mp3"`
	MimeType string `json:"mimetype" example:"audio/mpeg"`
}

// TranscriptRequest identifies a stored recording to transcribe
type TranscriptRequest struct {
	FileName string `json:"file_name" binding:"required" example:"aB3dE6gH.mp3"`
	MimeType string `json:"mimetype" example:"audio/mpeg"`
}
