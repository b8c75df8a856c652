package util

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Sup3rSecret", true},
		{"too short", "Ab1", false},
		{"no uppercase", "sup3rsecret", false},
		{"no lowercase", "SUP3RSECRET", false},
		{"no digit", "SuperSecret", false},
		{"exactly eight", "Abcdefg1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Username string `validate:"required,min=3"`
	}

	if errs := ValidateStruct(payload{Email: "alice@example.com", Username: "alice"}); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	errs := ValidateStruct(payload{Email: "not-an-email", Username: "al"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
	if errs["Email"] != "Invalid email format" {
		t.Fatalf("email message = %q", errs["Email"])
	}
	if errs["Username"] != "Minimum length is 3" {
		t.Fatalf("username message = %q", errs["Username"])
	}
}
