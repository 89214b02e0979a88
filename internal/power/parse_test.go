package power

import (
	"errors"
	"testing"
)

func TestParseActiveScheme(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		wantGUID string
		wantName string
		wantErr  bool
	}{
		{
			name:     "english",
			output:   "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)\r\n",
			wantGUID: "381b4222-f694-41f0-9685-ff5bb260df2e",
			wantName: "Balanced",
		},
		{
			name:     "localized label with space before colon",
			output:   "GUID du mode de gestion de l'alimentation : 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c  (Performances élevées)",
			wantGUID: "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c",
			wantName: "Performances élevées",
		},
		{
			name:     "scheme name with parentheses",
			output:   "Power Scheme GUID: e9a42b02-d5df-448d-aa00-03f14749eb61  (Ultimate (custom))",
			wantGUID: "e9a42b02-d5df-448d-aa00-03f14749eb61",
			wantName: "Ultimate (custom)",
		},
		{
			name:     "no name",
			output:   "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e",
			wantGUID: "381b4222-f694-41f0-9685-ff5bb260df2e",
		},
		{name: "empty", output: "", wantErr: true},
		{name: "no colon", output: "Access denied", wantErr: true},
		{name: "nothing after colon", output: "Power Scheme GUID:   ", wantErr: true},
		{name: "not a guid", output: "Power Scheme GUID: Balanced (Balanced)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActiveScheme(tt.output)
			if tt.wantErr {
				if !errors.Is(err, ErrUnexpectedOutput) {
					t.Errorf("ParseActiveScheme(%q) error = %v, want ErrUnexpectedOutput", tt.output, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseActiveScheme(%q) error: %v", tt.output, err)
			}
			if got.GUID != tt.wantGUID {
				t.Errorf("GUID = %q, want %q", got.GUID, tt.wantGUID)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestParseThrottleQuery(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		ac, dc  int
		wantErr bool
	}{
		{
			name:   "current indexes follow range values",
			output: "Maximum Possible Setting: 0x00000064\nCurrent AC Power Setting Index: 0x00000063\nCurrent DC Power Setting Index: 0x00000064\n",
			ac:     99,
			dc:     100,
		},
		{
			name:   "uppercase prefix",
			output: "AC: 0X00000064 DC: 0X00000064",
			ac:     100,
			dc:     100,
		},
		{name: "single value", output: "Current AC Power Setting Index: 0x00000064", wantErr: true},
		{name: "no values", output: "Invalid Parameters", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, dc, err := ParseThrottleQuery(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseThrottleQuery() = %d/%d, want error", ac, dc)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseThrottleQuery() error: %v", err)
			}
			if ac != tt.ac || dc != tt.dc {
				t.Errorf("ParseThrottleQuery() = %d/%d, want %d/%d", ac, dc, tt.ac, tt.dc)
			}
		})
	}
}
