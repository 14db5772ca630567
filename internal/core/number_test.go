package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{`12.5`, 12.5, true},
		{`-3.25`, -3.25, true},
		{`7`, 7, true},
		{`0`, 0, true},
		{`-42`, -42, true},
		{`"1200.50"`, 1200.5, true},
		{`"7"`, 7, true},
		{`" 2.75 "`, 2.75, true},
		{`"-15.1"`, -15.1, true},
		{`1e3`, 1000, true},
		{`"abc"`, 0, false},
		{`""`, 0, false},
		{`true`, 0, false},
		{`false`, 0, false},
		{`null`, 0, false},
		{`[1]`, 0, false},
		{`{"v":1}`, 0, false},
	}
	for _, tc := range cases {
		var n FlexNumber
		err := n.UnmarshalJSON([]byte(tc.in))
		if tc.ok {
			if err != nil || n.Float64() != tc.out {
				t.Fatalf("%s expected %v, got %v (err=%v)", tc.in, tc.out, n.Float64(), err)
			}
		} else {
			if err == nil {
				t.Fatalf("%s expected error", tc.in)
			}
			if !errors.Is(err, ErrUnsupportedNumeric) {
				t.Fatalf("%s expected ErrUnsupportedNumeric, got %v", tc.in, err)
			}
		}
	}
}

func TestFlexNumberInStruct(t *testing.T) {
	var payload struct {
		Balance FlexNumber `json:"balance"`
	}
	if err := json.Unmarshal([]byte(`{"balance": "1200.50"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Balance.Float64() != 1200.5 {
		t.Fatalf("expected 1200.5, got %v", payload.Balance.Float64())
	}
}
