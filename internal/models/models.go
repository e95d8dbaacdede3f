package models

import "strings"

// InboundMessage is a single message received from a chat channel.
// It is never modified after the channel adapter builds it.
type InboundMessage struct {
	Sender           string   `json:"sender"`
	Body             string   `json:"body"`
	NumMedia         int      `json:"num_media"`
	MediaURL         string   `json:"media_url,omitempty"`
	MediaContentType string   `json:"media_content_type,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Address          string   `json:"address,omitempty"`
	ProfileName      string   `json:"profile_name,omitempty"`
}

// HasMedia reports whether the message carries at least one attachment.
func (m InboundMessage) HasMedia() bool {
	return m.NumMedia > 0
}

// HasLocation reports whether both GPS coordinates were shared.
func (m InboundMessage) HasLocation() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// MediaIs reports whether the attachment content type starts with the given
// media-type prefix, e.g. "audio/".
func (m InboundMessage) MediaIs(prefix string) bool {
	return m.HasMedia() && strings.HasPrefix(strings.ToLower(m.MediaContentType), prefix)
}

// NormalizedIntake is the output of media intake: the query sent for advice,
// the annotation shown before the advice, and whether any step was simulated.
type NormalizedIntake struct {
	Query     string `json:"query"`
	Prefix    string `json:"prefix"`
	Simulated bool   `json:"simulated"`
}

// OutboundReply is the composed answer for one inbound message.
type OutboundReply struct {
	Text               string   `json:"text"`
	Jurisdiction       string   `json:"jurisdiction,omitempty"`
	Category           Category `json:"category,omitempty"`
	ReferralsSuggested bool     `json:"referrals_suggested"`
}
