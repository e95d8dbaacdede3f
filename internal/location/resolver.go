package location

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

var postalCodePattern = regexp.MustCompile(`\b(\d{6})\b`)

// Resolve maps a postal code, area name or free text to a jurisdiction.
// It never fails: anything unrecognised resolves to DefaultArea.
func Resolve(raw string) models.JurisdictionRecord {
	input := strings.ToLower(strings.TrimSpace(raw))

	// A 6-digit token only wins when it is a known code; otherwise keep looking.
	for _, match := range postalCodePattern.FindAllStringSubmatch(input, -1) {
		if area, ok := postalCodes[match[1]]; ok {
			return build(area)
		}
	}

	for _, kw := range areaKeywords {
		if strings.Contains(input, kw.keyword) {
			return build(kw.area)
		}
	}

	return build(DefaultArea)
}

// Default returns the fallback jurisdiction.
func Default() models.JurisdictionRecord {
	return build(DefaultArea)
}

func build(area string) models.JurisdictionRecord {
	return models.JurisdictionRecord{
		State:    defaultState,
		District: defaultDistrict,
		Area:     area,
		Display:  fmt.Sprintf("%s, %s, %s", area, defaultDistrict, defaultState),
	}
}
