package request

type SetDoorCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
