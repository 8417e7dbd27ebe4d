package model

import "github.com/google/uuid"

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateLanguageRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type AuthorRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	DateOfBirth *Date  `json:"dateOfBirth"`
	DateOfDeath *Date  `json:"dateOfDeath"`
}

type BookRequest struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Summary    string  `json:"summary" validate:"required,max=1000"`
	ISBN       string  `json:"isbn" validate:"required,len=13"`
	AuthorID   *int64  `json:"authorId"`
	LanguageID *int64  `json:"languageId"`
	GenreIDs   []int64 `json:"genreIds" validate:"required,min=1"`
}

// BookInstanceRequest leaves status and due date independent: nothing ties
// due_back to the On loan status.
type BookInstanceRequest struct {
	BookID     int64      `json:"bookId" validate:"required"`
	Imprint    string     `json:"imprint" validate:"required,max=200"`
	DueBack    *Date      `json:"dueBack"`
	BorrowerID *int64     `json:"borrowerId"`
	Status     LoanStatus `json:"status" validate:"omitempty,oneof=m o a r"`
}

// DueBackFilter is a due_back bucket of the admin copy list.
type DueBackFilter string

const (
	DueBackAny       DueBackFilter = ""
	DueBackToday     DueBackFilter = "today"
	DueBackPast7Days DueBackFilter = "past_7_days"
	DueBackThisMonth DueBackFilter = "this_month"
	DueBackThisYear  DueBackFilter = "this_year"
	DueBackNoDate    DueBackFilter = "no_date"
	DueBackHasDate   DueBackFilter = "has_date"
)

// BookInstanceFilter narrows the admin copy list; zero fields match every copy.
type BookInstanceFilter struct {
	Status  LoanStatus    `query:"status"`
	DueBack DueBackFilter `query:"due_back"`
}

// InstanceQuery is a resolved BookInstanceFilter. DueFrom is inclusive and
// DueTo exclusive; DueBackSet selects dated (true) or undated (false) copies.
type InstanceQuery struct {
	Status     LoanStatus
	DueFrom    *Date
	DueTo      *Date
	DueBackSet *bool
}

type CreatedID struct {
	ID int64 `json:"id"`
}

type CreatedUUID struct {
	ID uuid.UUID `json:"id"`
}
