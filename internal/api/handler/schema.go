package handler

// errorResponse mirrors the envelope rendered by the central error handler.
// Declared here so handler doc comments can reference it.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// deleteResponse reports how many documents a delete affected. Deleting an
// absent document is a success with a zero count, never an error.
type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
