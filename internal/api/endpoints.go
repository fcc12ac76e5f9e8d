package api

const (
	// BaseURL is the base URL for the Wiener Linien OGD realtime API
	BaseURL = "http://www.wienerlinien.at/ogd_realtime"

	// EndpointMonitor returns departure monitors for one or more stops
	// Required params: stopId (repeated); optional: activateTrafficInfo
	EndpointMonitor = "/monitor"
)

// Categories for the activateTrafficInfo parameter
const (
	// TrafficInfoShort selects short-form disruption notices
	TrafficInfoShort = "stoerungkurz"

	// TrafficInfoLong selects long-form disruption notices
	TrafficInfoLong = "stoerunglang"

	// TrafficInfoElevators selects elevator outage notices
	TrafficInfoElevators = "aufzugsinfo"
)
