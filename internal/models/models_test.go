package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInboundMessage_Predicates(t *testing.T) {
	lat, lon := 12.9, 77.6

	assert.True(t, InboundMessage{NumMedia: 1, MediaContentType: "Audio/OGG"}.MediaIs("audio/"))
	assert.False(t, InboundMessage{MediaContentType: "audio/ogg"}.MediaIs("audio/"))
	assert.False(t, InboundMessage{NumMedia: 1, MediaContentType: "image/png"}.MediaIs("audio/"))

	assert.True(t, InboundMessage{Latitude: &lat, Longitude: &lon}.HasLocation())
	assert.False(t, InboundMessage{Latitude: &lat}.HasLocation())
}

func TestFeeType_Label(t *testing.T) {
	assert.Equal(t, "🆓 Free", FeeFree.Label())
	assert.Equal(t, "💰 Sliding Scale", FeeSlidingScale.Label())
	assert.Equal(t, "💵 Consultation Fee", FeeConsultation.Label())
	assert.Equal(t, "💵 Fixed Fee", FeeFixed.Label())
	assert.Equal(t, "", FeeType("barter").Label())
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, CategoryFamily, Categories[0])
	assert.Equal(t, CategoryHumanRights, Categories[len(Categories)-1])
	assert.True(t, CategoryNone.IsNone())
	assert.False(t, CategoryCyber.IsNone())
}
