package response

type SuccessResponse struct {
	Success bool `json:"sucesso"`
}

type MessageResponse struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem"`
}

type CreatedResponse struct {
	Success bool   `json:"sucesso"`
	ID      string `json:"id,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}

func OKWithMessage(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}

func Created(id string) CreatedResponse {
	return CreatedResponse{Success: true, ID: id}
}
