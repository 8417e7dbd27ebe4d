package validate_test

import (
	"testing"

	"github.com/Astemirdum/local-library/pkg/validate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type bookForm struct {
	Title    string  `json:"title" validate:"required,max=5"`
	ISBN     string  `json:"isbn" validate:"required,len=13"`
	Status   string  `json:"status" validate:"omitempty,oneof=m o a r"`
	GenreIDs []int64 `json:"genreIds" validate:"required,min=1"`
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	tests := []struct {
		name string
		form bookForm
		want map[string][]string
	}{
		{
			name: "ok",
			form: bookForm{Title: "Dune", ISBN: "9780441013593", Status: "o", GenreIDs: []int64{1}},
		},
		{
			name: "required fields keyed by json name",
			form: bookForm{},
			want: map[string][]string{
				"title":    {"This field is required."},
				"isbn":     {"This field is required."},
				"genreIds": {"This field is required."},
			},
		},
		{
			name: "length and choice",
			form: bookForm{Title: "Dune Messiah", ISBN: "978", Status: "x", GenreIDs: []int64{1}},
			want: map[string][]string{
				"title":  {"Ensure this value has at most 5 characters."},
				"isbn":   {"Ensure this value has exactly 13 characters."},
				"status": {"Select a valid choice: m o a r."},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.form)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			fields, ok := validate.FieldErrors(err)
			require.True(t, ok)
			require.Equal(t, tt.want, fields)
		})
	}

	_, ok := validate.FieldErrors(errors.New("boom"))
	require.False(t, ok)
}
