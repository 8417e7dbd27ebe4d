package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()
	librarian := Principal{UserID: 1, Username: "librarian", Permissions: []string{PermCanMarkReturned}}
	reader := Principal{UserID: 2, Username: "reader"}

	tests := []struct {
		name  string
		p     Principal
		perms []string
		want  Decision
	}{
		{name: "anonymous", p: Principal{}, want: Unauthenticated},
		{name: "anonymous with perm", p: Principal{}, perms: []string{PermCanMarkReturned}, want: Unauthenticated},
		{name: "login only", p: reader, want: Allowed},
		{name: "missing perm", p: reader, perms: []string{PermCanMarkReturned}, want: PermissionDenied},
		{name: "has perm", p: librarian, perms: []string{PermCanMarkReturned}, want: Allowed},
		{name: "one of two", p: librarian, perms: []string{PermCanMarkReturned, PermManageCatalog}, want: PermissionDenied},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Authorize(tt.p, tt.perms...))
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()
	require.False(t, FromContext(context.Background()).IsAuthenticated())

	p := Principal{UserID: 7, Username: "x"}
	require.Equal(t, p, FromContext(WithPrincipal(context.Background(), p)))
}

func TestIssuer(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer(Config{Secret: "secret", TTL: time.Hour})
	iss.now = func() time.Time { return now }

	p := Principal{UserID: 3, Username: "staff", Permissions: []string{PermCanMarkReturned}}
	token, exp, err := iss.Issue(p)
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), exp)

	got, err := iss.Parse(token)
	require.NoError(t, err)
	require.Equal(t, p, got)

	t.Run("wrong key", func(t *testing.T) {
		other := NewIssuer(Config{Secret: "other"})
		_, err := other.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		late := NewIssuer(Config{Secret: "secret"})
		late.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err := late.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := iss.Parse("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
