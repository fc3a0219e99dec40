package theme

import (
	"testing"
)

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#ff0000", "#ff0000", 0.5, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpColor(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("LerpColor(%s, %s, %f) = %s, want %s", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := HexToRGB("#ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}

	r, g, b = HexToRGB("ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("without hash: got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}
}

func TestGradientText(t *testing.T) {
	result := GradientText("Hello", "#000000", "#ffffff")
	if result == "" {
		t.Error("GradientText returned empty string")
	}

	result = GradientText("", "#000000", "#ffffff")
	if result != "" {
		t.Error("GradientText should return empty for empty input")
	}
}

func TestChartColor_Wraps(t *testing.T) {
	if ChartColor(0) != "#d4a019" {
		t.Errorf("ChartColor(0) = %s", ChartColor(0))
	}
	if ChartColor(len(ChartColors)) != ChartColor(0) {
		t.Error("ChartColor should wrap")
	}
}

func TestLevelColor(t *testing.T) {
	if LevelColor(4) != ColorRed {
		t.Errorf("LevelColor(4) = %s, want red", LevelColor(4))
	}
	if LevelColor(9) != ColorMutedText || LevelColor(-1) != ColorMutedText {
		t.Error("out-of-range level should be muted")
	}
}

func TestMultiStopGradient_Ends(t *testing.T) {
	if got := MultiStopGradient(0, MeterGradient); got != MeterGradient[0] {
		t.Errorf("t=0: %s", got)
	}
	if got := MultiStopGradient(1.5, MeterGradient); got != MeterGradient[len(MeterGradient)-1] {
		t.Errorf("t>1: %s", got)
	}
}
