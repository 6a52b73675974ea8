package models

// QueryRequest is the body of POST /query/.
// Both fields must be present; empty strings are valid values.
type QueryRequest struct {
	FileName *string `json:"file_name" validate:"required"`
	Question *string `json:"question" validate:"required"`
}

// QueryResponse carries the generated answer.
type QueryResponse struct {
	Answer string `json:"answer" msgpack:"answer"`
}

// UploadResponse echoes the stored file name.
type UploadResponse struct {
	FileName string `json:"file_name" msgpack:"file_name"`
	Message  string `json:"message" msgpack:"message"`
}
