package model

// StatusSuccess is the envelope status of every successful response.
const StatusSuccess = "success"

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TaskResponse struct {
	Status string `json:"status"`
	Task   *Task  `json:"task"`
}

// TaskListResponse keeps the singular "task" key clients already depend on.
type TaskListResponse struct {
	Status string `json:"status"`
	Task   []Task `json:"task"`
}

type DocumentResponse struct {
	Status   string    `json:"status"`
	Document *Document `json:"document"`
}

type DocumentListResponse struct {
	Status    string     `json:"status"`
	Documents []Document `json:"documents"`
}
