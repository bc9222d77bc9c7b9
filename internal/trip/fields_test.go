package trip

import "testing"

func TestDecimalFloat(t *testing.T) {
	tests := []struct {
		in     Decimal
		want   float64
		wantOK bool
	}{
		{"12.50", 12.5, true},
		{"0", 0, true},
		{".5", 0.5, true},
		{"12.", 12, true},
		{"-3", -3, true},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"1e3", 0, false},
		{"1,000", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, ok := tt.in.Float()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Decimal(%q).Float() = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseDecimalKeepsText(t *testing.T) {
	d, err := ParseDecimal(" 12.50 ")
	if err != nil {
		t.Fatalf("ParseDecimal() error = %v", err)
	}
	if d != "12.50" {
		t.Errorf("ParseDecimal() = %q, want %q", d, "12.50")
	}

	if _, err := ParseDecimal("12a"); err == nil {
		t.Error("ParseDecimal(\"12a\") expected error")
	}
}

func TestValidateInput(t *testing.T) {
	feet, _ := Spec(FieldHeightFeet)
	inches, _ := Spec(FieldHeightInches)
	precip, _ := Spec(FieldPrecipitationChance)
	weight, _ := Spec(FieldWeight)
	temp, _ := Spec(FieldAverageTemperature)
	duration, _ := Spec(FieldTripDuration)

	tests := []struct {
		name    string
		spec    FieldSpec
		text    string
		wantErr bool
	}{
		{"feet in range", feet, "8", false},
		{"feet too tall", feet, "9", true},
		{"inches in range", inches, "11", false},
		{"inches overflow", inches, "12", true},
		{"precipitation max", precip, "100", false},
		{"precipitation over", precip, "101", true},
		{"weight partial", weight, "150.", false},
		{"weight letters", weight, "15o", true},
		{"weight negative", weight, "-5", true},
		{"temperature negative", temp, "-5", false},
		{"duration zero", duration, "0", true},
		{"blank is fine", weight, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.ValidateInput(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestFieldLabel(t *testing.T) {
	if got := FieldTrailDistance.Label(); got != "Trail Distance" {
		t.Errorf("Label() = %q, want %q", got, "Trail Distance")
	}
	if got := FieldHeight.Label(); got != "Height" {
		t.Errorf("Label() = %q, want %q", got, "Height")
	}
	if got := Field("unknown").Label(); got != "unknown" {
		t.Errorf("Label() = %q, want %q", got, "unknown")
	}
}
