package model

// MessageResponse is the {"msg": ...} body used for confirmations and errors.
type MessageResponse struct {
	Msg string `json:"msg"`
}
