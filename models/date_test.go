package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2026, time.October, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2026-10-01"` {
		t.Errorf("expected \"2026-10-01\", got %s", b)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "date only", input: `"2026-10-01"`, want: NewDate(2026, time.October, 1)},
		{name: "rfc3339 timestamp accepted", input: `"2026-10-01T15:04:05Z"`, want: Date{time.Date(2026, time.October, 1, 15, 4, 5, 0, time.UTC)}},
		{name: "null clears the date", input: `null`, want: Date{}},
		{name: "empty string clears the date", input: `""`, want: Date{}},
		{name: "garbage rejected", input: `"next tuesday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !d.Time.Equal(tt.want.Time) {
				t.Errorf("expected %v, got %v", tt.want.Time, d.Time)
			}
		})
	}
}

func TestDate_MarshalRoundTrip(t *testing.T) {
	original := NewDate(2026, time.December, 24)

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed Date
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Time.Equal(original.Time) {
		t.Errorf("round trip changed the date: %v != %v", parsed.Time, original.Time)
	}
}

func TestDate_Scan(t *testing.T) {
	want := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time.Time", src: want, want: want},
		{name: "string", src: "2026-10-01", want: want},
		{name: "bytes", src: []byte("2026-10-01"), want: want},
		{name: "nil clears", src: nil, want: time.Time{}},
		{name: "unsupported type", src: 12345, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !d.Time.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, d.Time)
			}
		})
	}
}

func TestDate_Value(t *testing.T) {
	d := NewDate(2026, time.October, 1)

	v, err := d.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := v.(time.Time); !ok || !got.Equal(d.Time) {
		t.Errorf("unexpected driver value: %v", v)
	}
}

func TestVacation_HasRequiredFields(t *testing.T) {
	valid := Vacation{
		Destination: "Lisbon",
		Description: "A week by the Tagus",
		StartDate:   NewDate(2026, time.October, 1),
		EndDate:     NewDate(2026, time.October, 8),
		Price:       1290.50,
		Image:       "lisbon.jpg",
	}

	if !valid.HasRequiredFields() {
		t.Error("expected fully populated vacation to pass")
	}

	missingDestination := valid
	missingDestination.Destination = ""
	if missingDestination.HasRequiredFields() {
		t.Error("expected missing destination to fail")
	}

	missingDates := valid
	missingDates.StartDate = Date{}
	if missingDates.HasRequiredFields() {
		t.Error("expected missing start date to fail")
	}
}
