package invoice

import "testing"

func TestAmountInWords_MagnitudeBoundaries(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred and One"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand and One"},
		{99999, "Ninety Nine Thousand Nine Hundred and Ninety Nine"},
		{100000, "One Lakh"},
		{100001, "One Lakh and One"},
		{847, "Eight Hundred and Forty Seven"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
	}

	for _, tt := range tests {
		if got := AmountInWords(tt.n); got != tt.want {
			t.Errorf("AmountInWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAmountInWords_Negative(t *testing.T) {
	if got := AmountInWords(-250); got != "Minus Two Hundred and Fifty" {
		t.Errorf("AmountInWords(-250) = %q", got)
	}
}
