package pieces

import "time"

// Temperature and clay values the studio's submission form offers.
const (
	TemperatureHaute = "Haute température"
	TemperatureBasse = "Basse température"

	ClayGres       = "Grès"
	ClayFaience    = "Faïence"
	ClayPorcelaine = "Porcelaine"
)

// Stage identifies one of the two kiln firing stages.
type Stage string

const (
	StageBiscuit   Stage = "biscuit"
	StageEmaillage Stage = "emaillage"
)

func (s Stage) Valid() bool {
	return s == StageBiscuit || s == StageEmaillage
}

// Piece is one ceramic item tracked through the two firing stages.
// Columns mirror the studio's pieces table; the submitting user's identity
// is captured as a snapshot at submission time, never re-resolved.
type Piece struct {
	ID uint `gorm:"primaryKey"`

	UserEmail     string `gorm:"column:user_email;not null;index:idx_pieces_user_email"`
	UserFirstName string `gorm:"column:user_first_name;not null"`
	UserLastName  string `gorm:"column:user_last_name;not null"`

	PhotoURL        string  `gorm:"column:photo_url;not null"`
	TemperatureType string  `gorm:"column:temperature_type;type:varchar(32);not null"`
	ClayType        string  `gorm:"column:clay_type;type:varchar(32);not null"`
	Notes           *string `gorm:"column:notes;type:text"`

	BiscuitRequested     bool       `gorm:"column:biscuit_requested;not null;default:false"`
	BiscuitCompleted     bool       `gorm:"column:biscuit_completed;not null;default:false"`
	BiscuitDate          *time.Time `gorm:"column:biscuit_date"`
	BiscuitCompletedDate *time.Time `gorm:"column:biscuit_completed_date"`

	EmaillageRequested     bool       `gorm:"column:emaillage_requested;not null;default:false"`
	EmaillageCompleted     bool       `gorm:"column:emaillage_completed;not null;default:false"`
	EmaillageDate          *time.Time `gorm:"column:emaillage_date"`
	EmaillageCompletedDate *time.Time `gorm:"column:emaillage_completed_date"`

	SubmittedDate time.Time `gorm:"column:submitted_date;autoCreateTime"`
}

func (Piece) TableName() string {
	return "pieces"
}

// Active reports whether the piece still has at least one firing stage
// ahead of it. Both stages completed means the piece is historical.
func (p Piece) Active() bool {
	return !(p.BiscuitCompleted && p.EmaillageCompleted)
}
