package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsInvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "items required", err: ErrItemsRequired, want: true},
		{name: "status required", err: ErrStatusRequired, want: true},
		{name: "slot occupied", err: ErrSlotOccupied, want: true},
		{name: "wrapped items required", err: fmt.Errorf("submit: %w", ErrItemsRequired), want: true},
		{name: "not found", err: ErrOrderNotFound, want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidArgument(tt.err); got != tt.want {
				t.Errorf("IsInvalidArgument() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "watcher unavailable", err: ErrWatcherUnavailable, want: true},
		{name: "coordinator closed", err: ErrCoordinatorClosed, want: true},
		{name: "joined publisher closed", err: errors.Join(ErrPublisherClosed, errors.New("extra context")), want: true},
		{name: "not found", err: ErrOrderNotFound, want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnavailable(tt.err); got != tt.want {
				t.Errorf("IsUnavailable() = %v, want %v", got, tt.want)
			}
		})
	}
}
