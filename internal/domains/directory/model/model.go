package model

const (
	EntitySpecialty    = "specialty"
	EntityPsychologist = "psychologist"
	EntityPatient      = "patient"

	SpecialtyTableName    = "specialties"
	PsychologistTableName = "psychologists"
	PatientTableName      = "patients"

	FieldID          = "id"
	FieldName        = "name"
	FieldAccountID   = "account_id"
	FieldSpecialtyID = "specialty_id"
	FieldFullName    = "full_name"
)

type Specialty struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Psychologist struct {
	ID          int64  `db:"id"`
	AccountID   string `db:"account_id"`
	SpecialtyID int64  `db:"specialty_id"`
	FullName    string `db:"full_name"`
}

// PsychologistSummary is a psychologist joined with the name of its specialty.
type PsychologistSummary struct {
	ID            int64  `db:"id"`
	FullName      string `db:"full_name"`
	SpecialtyID   int64  `db:"specialty_id"`
	SpecialtyName string `column:"name"        db:"specialty_name" table:"specialties"`
}

func (PsychologistSummary) GetJoinQuery() string {
	return "JOIN specialties ON specialties.id = psychologists.specialty_id"
}

type Patient struct {
	ID        int64  `db:"id"`
	AccountID string `db:"account_id"`
	FullName  string `db:"full_name"`
}
