package pieces

import (
	"time"

	"atelier-app/internal/domain/pieces"
)

type SubmittedByDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PieceDTO is the wire shape of a piece: flat firing fields with the owner
// snapshot nested under submittedBy, the way the dashboards consume it.
type PieceDTO struct {
	ID          uint           `json:"id"`
	SubmittedBy SubmittedByDTO `json:"submittedBy"`

	PhotoURL        string  `json:"photoUrl"`
	TemperatureType string  `json:"temperatureType"`
	ClayType        string  `json:"clayType"`
	Notes           *string `json:"notes"`

	BiscuitRequested     bool       `json:"biscuitRequested"`
	BiscuitCompleted     bool       `json:"biscuitCompleted"`
	BiscuitDate          *time.Time `json:"biscuitDate"`
	BiscuitCompletedDate *time.Time `json:"biscuitCompletedDate"`

	EmaillageRequested     bool       `json:"emaillageRequested"`
	EmaillageCompleted     bool       `json:"emaillageCompleted"`
	EmaillageDate          *time.Time `json:"emaillageDate"`
	EmaillageCompletedDate *time.Time `json:"emaillageCompletedDate"`

	SubmittedDate time.Time `json:"submittedDate"`
}

func toPieceDTO(p pieces.Piece) PieceDTO {
	return PieceDTO{
		ID: p.ID,
		SubmittedBy: SubmittedByDTO{
			Email:     p.UserEmail,
			FirstName: p.UserFirstName,
			LastName:  p.UserLastName,
		},
		PhotoURL:        p.PhotoURL,
		TemperatureType: p.TemperatureType,
		ClayType:        p.ClayType,
		Notes:           p.Notes,

		BiscuitRequested:     p.BiscuitRequested,
		BiscuitCompleted:     p.BiscuitCompleted,
		BiscuitDate:          p.BiscuitDate,
		BiscuitCompletedDate: p.BiscuitCompletedDate,

		EmaillageRequested:     p.EmaillageRequested,
		EmaillageCompleted:     p.EmaillageCompleted,
		EmaillageDate:          p.EmaillageDate,
		EmaillageCompletedDate: p.EmaillageCompletedDate,

		SubmittedDate: p.SubmittedDate,
	}
}

type CreatePieceRequest struct {
	UserEmail          string  `json:"userEmail" binding:"required,email"`
	FirstName          string  `json:"firstName" binding:"required"`
	LastName           string  `json:"lastName" binding:"required"`
	PhotoURL           string  `json:"photoUrl" binding:"required"`
	TemperatureType    string  `json:"temperatureType" binding:"required"`
	ClayType           string  `json:"clayType" binding:"required"`
	Notes              *string `json:"notes"`
	BiscuitAlreadyDone bool    `json:"biscuitAlreadyDone"`
}

type FiringRequest struct {
	PieceID     uint   `json:"pieceId" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=biscuit emaillage"`
	DesiredDate string `json:"desiredDate" binding:"required"`
}

type CompleteRequest struct {
	PieceID uint   `json:"pieceId" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=biscuit emaillage"`
}

type DeleteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID int    `json:"deletedId"`
}
