package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Dune", Book{Title: "Dune"}.String())
	require.Equal(t, "Herbert, Frank", Author{FirstName: "Frank", LastName: "Herbert"}.String())
	require.Equal(t, "Horror", Genre{Name: "Horror"}.String())
	require.Equal(t, "English", Language{Name: "English"}.String())

	id := uuid.MustParse("0b6e7e2c-4c7a-4f55-9b1c-0a4c1f2d9e11")
	require.Equal(t, "0b6e7e2c-4c7a-4f55-9b1c-0a4c1f2d9e11 (Dune)", BookInstance{ID: id, BookTitle: "Dune"}.String())
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()
	today := NewDate(2026, time.October, 16)
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	tests := []struct {
		name    string
		dueBack *Date
		want    bool
	}{
		{name: "no due date", dueBack: nil, want: false},
		{name: "yesterday", dueBack: &yesterday, want: true},
		{name: "today", dueBack: &today, want: false},
		{name: "tomorrow", dueBack: &tomorrow, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, BookInstance{DueBack: tt.dueBack, Status: StatusOnLoan}.IsOverdue(today))
		})
	}
}

func TestDisplayGenre(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", DisplayGenre(nil))
	require.Equal(t, "Horror", DisplayGenre([]Genre{{Name: "Horror"}}))
	require.Equal(t, "A, B, C", DisplayGenre([]Genre{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}))
}

func TestLoanStatus(t *testing.T) {
	t.Parallel()
	require.True(t, StatusOnLoan.Valid())
	require.Equal(t, "On loan", StatusOnLoan.Display())
	require.Equal(t, "Maintenance", StatusMaintenance.Display())
	require.False(t, LoanStatus("x").Valid())
}

func TestPaging(t *testing.T) {
	t.Parallel()
	require.Equal(t, Paging{Page: 1, PageSize: 10, TotalElements: 25, TotalPages: 3}, NewPaging(1, 10, 25))
	require.Equal(t, 0, NewPaging(1, 10, 0).TotalPages)
	require.Equal(t, 1, NewPaging(1, 10, 10).TotalPages)
	require.Equal(t, 20, Offset(3, 10))
}

func TestDate(t *testing.T) {
	t.Parallel()
	d, err := ParseDate("2026-11-06")
	require.NoError(t, err)
	require.Equal(t, NewDate(2026, time.November, 6), d)

	b, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: d})
	require.NoError(t, err)
	require.JSONEq(t, `{"d":"2026-11-06"}`, string(b))

	var got struct {
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2026-11-06"}`), &got))
	require.Equal(t, d, *got.D)
	require.Error(t, json.Unmarshal([]byte(`{"d":"06/11/2026"}`), &got))

	var p Date
	require.NoError(t, p.UnmarshalParam("2026-01-02"))
	require.Equal(t, "2026-01-02", p.String())

	late := time.Date(2026, time.October, 16, 23, 59, 0, 0, time.FixedZone("X", 3*3600))
	require.Equal(t, NewDate(2026, time.October, 16), DateOf(late))
}
