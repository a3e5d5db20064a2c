package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  postgres://u:p@localhost:5432/app  ", "postgres://u:p@localhost:5432/app"},
		{`"postgresql://u@db/app"`, "postgresql://u@db/app"},
		{"host=localhost user=app dbname=app", "host=localhost user=app dbname=app sslmode=disable"},
		{"host=localhost   user=app  dbname=app sslmode=require", "host=localhost user=app dbname=app sslmode=require"},
		{"not-a-dsn", "not-a-dsn"},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Fatalf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
