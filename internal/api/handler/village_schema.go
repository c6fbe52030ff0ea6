package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createVillageRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
	X    int    `json:"x"    validate:"min=-400,max=400"`
	Y    int    `json:"y"    validate:"min=-400,max=400"`
}

type villageResponse struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Name       string    `json:"name"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Population int       `json:"population"`
	CreatedAt  time.Time `json:"created_at"`
}
