// Package urn handles the scheme prefixes carried by facility and model ids.
//
// The codecs only ever work on the bare base64url part; putting a prefix back
// on is left to whoever talks to the service.
package urn

import "strings"

const (
	// ModelPrefix is carried by model ids.
	ModelPrefix = "urn:adsk.dtm:"
	// FacilityPrefix is carried by facility ids. A facility's default model
	// has the same id under ModelPrefix.
	FacilityPrefix = "urn:adsk.dtt:"
)

// StripModel removes a leading model or facility prefix from id. Anything
// else is returned unchanged.
func StripModel(id string) string {
	switch {
	case strings.HasPrefix(id, ModelPrefix):
		return id[len(ModelPrefix):]
	case strings.HasPrefix(id, FacilityPrefix):
		return id[len(FacilityPrefix):]
	}
	return id
}

// Model returns id with the model prefix, replacing a facility prefix.
func Model(id string) string { return ModelPrefix + StripModel(id) }

// DefaultModel returns the id of the default model of a facility.
func DefaultModel(facility string) string { return Model(facility) }

// IsDefaultModel reports whether modelID names the default model of
// facility. Either may be given with or without a prefix.
func IsDefaultModel(facility, modelID string) bool {
	return StripModel(facility) == StripModel(modelID)
}
