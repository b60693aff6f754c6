package models

import "testing"

func TestEffectivePrice(t *testing.T) {
	override := 120.0
	room := Room{
		PricePerNight: &override,
		RoomType:      RoomType{BasePrice: 80},
	}

	if got := room.EffectivePrice(); got != 120 {
		t.Fatalf("expected override price 120, got %v", got)
	}

	room.PricePerNight = nil
	if got := room.EffectivePrice(); got != 80 {
		t.Fatalf("expected base price 80, got %v", got)
	}
}
