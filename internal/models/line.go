package models

// VehicleType classifies a line by the vehicle serving it.
type VehicleType string

const (
	VehicleTram     VehicleType = "Tram"
	VehicleMetro    VehicleType = "Metro"
	VehicleCityBus  VehicleType = "CityBus"
	VehicleNightBus VehicleType = "NightBus"
)

// vehicleCodes maps the feed's vehicle-type codes to VehicleType values.
// Codes not listed here are rejected, never defaulted.
var vehicleCodes = map[string]VehicleType{
	"ptTram":     VehicleTram,
	"ptMetro":    VehicleMetro,
	"ptBusCity":  VehicleCityBus,
	"ptBusNight": VehicleNightBus,
}

// VehicleTypeFromCode resolves a feed vehicle-type code.
func VehicleTypeFromCode(code string) (VehicleType, error) {
	vt, ok := vehicleCodes[code]
	if !ok {
		return "", &UnknownVehicleCodeError{Code: code}
	}
	return vt, nil
}

// Line identifies a transit line: vehicle type plus the public line name.
type Line struct {
	Type VehicleType `json:"type"`
	Name string      `json:"name"`
}
