package domain

import (
	"errors"
	"testing"
)

func TestParseContactStatusFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ContactStatus
		wantErr bool
	}{
		{name: "valid uppercase", input: "ACCEPTED", want: ContactStatusAccepted},
		{name: "valid lowercase with spaces", input: " pending ", want: ContactStatusPending},
		{name: "invalid", input: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseContactStatusFromString(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("ParseContactStatusFromString() error = %v, want ErrValidation", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseContactStatusFromString() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseContactStatusFromString() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseContactMethodFromString(t *testing.T) {
	t.Parallel()

	got, err := ParseContactMethodFromString(" call ")
	if err != nil {
		t.Fatalf("ParseContactMethodFromString() unexpected error = %v", err)
	}
	if got != ContactMethodCall {
		t.Fatalf("ParseContactMethodFromString() = %s, want %s", got, ContactMethodCall)
	}

	_, err = ParseContactMethodFromString("fax")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseContactMethodFromString() error = %v, want ErrValidation", err)
	}
}

func validContact() Contact {
	return Contact{
		OrgName:       "Green Coast",
		ContactName:   "Lee",
		Phone:         "010-1234-5678",
		Email:         "req@org.kr",
		Content:       "Consultation about the spring cleanup.",
		Method:        ContactMethodCall,
		PreferredDate: "2026-04-10",
		PreferredTime: "14:00",
		Status:        ContactStatusPending,
	}
}

func TestContactValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Contact)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Contact) {}},
		{name: "missing org name", mutate: func(c *Contact) { c.OrgName = "  " }, wantErr: true},
		{name: "missing contact name", mutate: func(c *Contact) { c.ContactName = "" }, wantErr: true},
		{name: "missing phone", mutate: func(c *Contact) { c.Phone = "" }, wantErr: true},
		{name: "missing email", mutate: func(c *Contact) { c.Email = "" }, wantErr: true},
		{name: "malformed email", mutate: func(c *Contact) { c.Email = "not-an-address" }, wantErr: true},
		{name: "missing content", mutate: func(c *Contact) { c.Content = "" }, wantErr: true},
		{name: "invalid method", mutate: func(c *Contact) { c.Method = "FAX" }, wantErr: true},
		{name: "missing preferred date", mutate: func(c *Contact) { c.PreferredDate = "" }, wantErr: true},
		{name: "missing preferred time", mutate: func(c *Contact) { c.PreferredTime = "" }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validContact()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("Validate() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error = %v", err)
			}
		})
	}
}
