package subscription

import (
	"testing"

	"sheetlens-backend/internal/backend"
)

func TestExportAllowed(t *testing.T) {
	tests := []struct {
		name string
		sub  backend.Subscription
		want bool
	}{
		{name: "active pro", sub: backend.Subscription{Plan: "pro", Status: "active"}, want: true},
		{name: "trialing premium", sub: backend.Subscription{Plan: "premium", Status: "trialing"}, want: true},
		{name: "active free no credits", sub: backend.Subscription{Plan: "free", Status: "active"}, want: false},
		{name: "active free with credits", sub: backend.Subscription{Plan: "free", Status: "active", CreditsLeft: 3}, want: true},
		{name: "canceled pro", sub: backend.Subscription{Plan: "pro", Status: "canceled"}, want: false},
		{name: "canceled with credits", sub: backend.Subscription{Plan: "pro", Status: "canceled", CreditsLeft: 1}, want: true},
		{name: "empty", sub: backend.Subscription{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportAllowed(tt.sub); got != tt.want {
				t.Fatalf("ExportAllowed(%+v) = %v, want %v", tt.sub, got, tt.want)
			}
		})
	}
}
