package storage

import "testing"

func TestYearUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Year
		text  string
	}{
		{`2009`, 2009, "2009"},
		{`"2019"`, 2019, "2019"},
		{`" 1984 "`, 1984, "1984"},
		{`1999.0`, 1999, "1999"},
		{`2009.5`, 0, ""},
		{`"c. 1920"`, 0, ""},
		{`null`, 0, ""},
		{`true`, 0, ""},
		{`1e99`, 0, ""},
	}

	for _, tt := range tests {
		y := Year(7)
		if err := y.UnmarshalJSON([]byte(tt.input)); err != nil {
			t.Errorf("UnmarshalJSON(%s) error = %v", tt.input, err)
		}
		if y != tt.want {
			t.Errorf("UnmarshalJSON(%s) = %d, want %d", tt.input, y, tt.want)
		}
		if got := y.String(); got != tt.text {
			t.Errorf("Year(%s).String() = %q, want %q", tt.input, got, tt.text)
		}
	}
}

func TestMovieDecodesOddYear(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"title":"Us","year":"2019","genres":["Horror"]}`), &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if m.Year != 2019 || m.Title != "Us" {
		t.Errorf("decoded %+v", m)
	}

	data, err := json.Marshal(&m)
	if err != nil {
		t.Fatal(err)
	}
	var back Movie
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Year != 2019 {
		t.Errorf("round trip Year = %d, want 2019", back.Year)
	}
}
