package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PageSize is fixed for every paginated listing.
const PageSize = 10

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func NewPaging(page, size, total int) Paging {
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Paging{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Offset of the first row of page (1-based).
func Offset(page, size int) int {
	return (page - 1) * size
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type ListAuthors struct {
	Paging `json:",inline"`
	Items  []Author `json:"items"`
}

type ListBookInstances struct {
	Paging `json:",inline"`
	Items  []BookInstance `json:"items"`
}

type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func (g Genre) String() string { return g.Name }

type Language struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func (l Language) String() string { return l.Name }

type Author struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"firstName" db:"first_name"`
	LastName    string `json:"lastName" db:"last_name"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	DateOfDeath *Date  `json:"dateOfDeath,omitempty" db:"date_of_death"`
}

func (a Author) String() string {
	return a.LastName + ", " + a.FirstName
}

type Book struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Summary    string  `json:"summary" db:"summary"`
	ISBN       string  `json:"isbn" db:"isbn"`
	AuthorID   *int64  `json:"authorId" db:"author_id"`
	AuthorName *string `json:"author,omitempty" db:"author_name"`
	LanguageID *int64  `json:"languageId" db:"language_id"`
}

func (b Book) String() string { return b.Title }

// BookDetail is a book with everything its detail page shows.
type BookDetail struct {
	Book      `json:",inline"`
	Author    *Author        `json:"authorDetail,omitempty"`
	Language  *Language      `json:"language,omitempty"`
	Genres    []Genre        `json:"genres"`
	Genre     string         `json:"displayGenre"`
	Instances []BookInstance `json:"instances"`
}

// DisplayGenre joins the names of the first three genres.
func DisplayGenre(genres []Genre) string {
	names := make([]string, 0, 3)
	for i := 0; i < len(genres) && i < 3; i++ {
		names = append(names, genres[i].Name)
	}
	return strings.Join(names, ", ")
}

type AuthorDetail struct {
	Author `json:",inline"`
	Books  []Book `json:"books"`
}

type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

var loanStatusNames = map[LoanStatus]string{
	StatusMaintenance: "Maintenance",
	StatusOnLoan:      "On loan",
	StatusAvailable:   "Available",
	StatusReserved:    "Reserved",
}

func (s LoanStatus) Valid() bool {
	_, ok := loanStatusNames[s]
	return ok
}

// Display is the human-readable status name.
func (s LoanStatus) Display() string {
	return loanStatusNames[s]
}

type BookInstance struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	BookID       int64      `json:"bookId" db:"book_id"`
	BookTitle    string     `json:"bookTitle" db:"book_title"`
	Imprint      string     `json:"imprint" db:"imprint"`
	DueBack      *Date      `json:"dueBack" db:"due_back"`
	BorrowerID   *int64     `json:"borrowerId" db:"borrower_id"`
	BorrowerName *string    `json:"borrower,omitempty" db:"borrower_name"`
	Status       LoanStatus `json:"status" db:"status"`
	Overdue      bool       `json:"isOverdue" db:"-"`
}

func (bi BookInstance) String() string {
	return fmt.Sprintf("%s (%s)", bi.ID, bi.BookTitle)
}

// IsOverdue reports whether the due date is set and strictly before today.
func (bi BookInstance) IsOverdue(today Date) bool {
	return bi.DueBack != nil && bi.DueBack.Before(today)
}

type Summary struct {
	NumBooks              int `json:"num_books"`
	NumInstances          int `json:"num_instances"`
	NumInstancesAvailable int `json:"num_instances_available"`
	NumAuthors            int `json:"num_authors"`
	NumGoosebumps         int `json:"num_goosebumps"`
	NumMiddleGradeHorror  int `json:"num_mg_horror"`
	NumVisits             int `json:"num_visits"`
}

// RenewalForm is what the renewal page is pre-populated with.
type RenewalForm struct {
	BookInstance BookInstance `json:"book_instance"`
	RenewalDate  Date         `json:"renewal_date"`
}

type RenewBookRequest struct {
	RenewalDate *Date `json:"renewal_date" form:"renewal_date"`
}

type User struct {
	ID           int64    `json:"id" db:"id"`
	Username     string   `json:"username" db:"username"`
	PasswordHash string   `json:"-" db:"password_hash"`
	IsSuperuser  bool     `json:"isSuperuser" db:"is_superuser"`
	Permissions  []string `json:"permissions" db:"permissions"`
}

type AuthRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}
