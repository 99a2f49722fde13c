package main

import "testing"

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"15", 15, false},
		{"$15", 15, false},
		{" $15", 15, false},
		{"  $10.50  ", 10.50, false},
		{"10.50\n", 10.50, false},
		{"$ 15", 0, true},
		{"fifteen", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseAnswer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAnswer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAnswer(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitHands(t *testing.T) {
	tests := []struct {
		total, workers int
		want           []int
	}{
		{10, 4, []int{3, 3, 2, 2}},
		{3, 4, []int{1, 1, 1}},
		{8, 4, []int{2, 2, 2, 2}},
		{1, 4, []int{1}},
		{5, 0, []int{5}},
		{0, 4, nil},
	}

	for _, tt := range tests {
		got := splitHands(tt.total, tt.workers)
		if len(got) != len(tt.want) {
			t.Errorf("splitHands(%d, %d) = %v, want %v", tt.total, tt.workers, got, tt.want)
			continue
		}
		sum := 0
		for i, n := range got {
			if n != tt.want[i] {
				t.Errorf("splitHands(%d, %d) = %v, want %v", tt.total, tt.workers, got, tt.want)
				break
			}
			sum += n
		}
		if sum != tt.total {
			t.Errorf("splitHands(%d, %d) sums to %d", tt.total, tt.workers, sum)
		}
	}
}
