package testutil

// Sample JSON responses for API testing

// SampleMonitorResponse is a minimal valid monitor response for one stop
const SampleMonitorResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"type": "Feature",
					"geometry": {
						"type": "Point",
						"coordinates": [16.35723, 48.21109]
					},
					"properties": {
						"name": "60200252",
						"title": "Rathaus",
						"municipality": "Wien",
						"municipalityId": 90001,
						"type": "stop",
						"coordName": "WGS84",
						"attributes": {
							"rbl": 252
						}
					}
				},
				"lines": [
					{
						"name": "2",
						"towards": "Friedrich-Engels-Platz",
						"direction": "R",
						"richtungsId": "1",
						"barrierFree": true,
						"realtimeSupported": true,
						"trafficjam": false,
						"departures": {
							"departure": [
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:02:00.000+0100",
										"timeReal": "2024-01-01T10:03:00.000+0100",
										"countdown": 2
									}
								},
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:06:00.000+0100",
										"countdown": 5
									}
								}
							]
						},
						"type": "ptTram",
						"lineId": 102
					}
				]
			}
		]
	},
	"message": {
		"value": "OK",
		"messageCode": 1,
		"serverTime": "2024-01-01T10:00:30.000+0100"
	}
}`

// SampleMonitorWithTrafficResponse is a monitor response carrying traffic notes
const SampleMonitorWithTrafficResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"type": "Feature",
					"properties": {
						"name": "60200252",
						"title": "Rathaus",
						"type": "stop",
						"attributes": {
							"rbl": 252
						}
					}
				},
				"lines": [
					{
						"name": "2",
						"towards": "Friedrich-Engels-Platz",
						"departures": {
							"departure": [
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:06:00.000+0100",
										"countdown": 5
									}
								}
							]
						},
						"type": "ptTram",
						"lineId": 102
					}
				]
			}
		],
		"trafficInfos": [
			{
				"refTrafficInfoCategoryId": 1,
				"name": "stoerunglang",
				"priority": "1",
				"owner": "Wiener Linien",
				"title": "U2: Betriebseinstellung",
				"description": "Die Linie U2 ist zwischen Schottentor und Karlsplatz unterbrochen.",
				"relatedLines": ["U2"],
				"time": {
					"start": "2024-01-01T06:00:00.000+0100",
					"end": "2024-01-02T20:00:00.000+0100"
				}
			},
			{
				"refTrafficInfoCategoryId": 2,
				"name": "stoerunglang",
				"title": "2: Verkehrsunfall",
				"description": "Die Linie 2 kann derzeit die Haltestelle Rathaus nicht anfahren.",
				"relatedLines": ["2"]
			}
		]
	},
	"message": {
		"value": "OK",
		"messageCode": 1,
		"serverTime": "2024-01-01T10:00:30.000+0100"
	}
}`

// SampleMultiStopResponse covers several monitored stops at once
const SampleMultiStopResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"type": "Feature",
					"properties": {
						"name": "60200252",
						"title": "Rathaus",
						"type": "stop",
						"attributes": {
							"rbl": 252
						}
					}
				},
				"lines": [
					{
						"name": "2",
						"towards": "Friedrich-Engels-Platz",
						"departures": {
							"departure": [
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:08:00.000+0100",
										"countdown": 7
									}
								}
							]
						},
						"type": "ptTram",
						"lineId": 102
					}
				]
			},
			{
				"locationStop": {
					"type": "Feature",
					"properties": {
						"name": "60201212",
						"title": "Schottentor",
						"type": "stop",
						"attributes": {
							"rbl": 1212
						}
					}
				},
				"lines": [
					{
						"name": "40A",
						"towards": "Döblinger Friedhof",
						"departures": {
							"departure": [
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:02:00.000+0100",
										"timeReal": "2024-01-01T10:02:00.000+0100",
										"countdown": 1
									}
								}
							]
						},
						"type": "ptBusCity",
						"lineId": 431
					},
					{
						"name": "N41",
						"towards": "Pötzleinsdorf",
						"departures": {
							"departure": [
								{
									"departureTime": {
										"timePlanned": "2024-01-01T10:26:00.000+0100",
										"countdown": 25
									}
								}
							]
						},
						"type": "ptBusNight",
						"lineId": 641
					}
				]
			}
		]
	},
	"message": {
		"value": "OK",
		"messageCode": 1,
		"serverTime": "2024-01-01T10:00:30.000+0100"
	}
}`

// SampleMalformedTrafficResponse carries a traffic note without a description
const SampleMalformedTrafficResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"properties": {
						"title": "Rathaus"
					}
				},
				"lines": [
					{
						"name": "2",
						"towards": "Friedrich-Engels-Platz",
						"departures": {
							"departure": []
						},
						"type": "ptTram"
					}
				]
			}
		],
		"trafficInfos": [
			{
				"name": "stoerunglang",
				"title": "U2: Betriebseinstellung"
			}
		]
	}
}`

// SampleMissingMonitorsResponse lacks the monitors list entirely
const SampleMissingMonitorsResponse = `{
	"data": {},
	"message": {
		"value": "OK",
		"messageCode": 1,
		"serverTime": "2024-01-01T10:00:30.000+0100"
	}
}`

// SampleMissingLinesResponse has a monitor without its lines list
const SampleMissingLinesResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"properties": {
						"title": "Rathaus"
					}
				}
			}
		]
	}
}`

// SampleUnknownVehicleResponse carries a vehicle type code outside the known set
const SampleUnknownVehicleResponse = `{
	"data": {
		"monitors": [
			{
				"locationStop": {
					"properties": {
						"title": "Rathaus"
					}
				},
				"lines": [
					{
						"name": "2",
						"towards": "Friedrich-Engels-Platz",
						"departures": {
							"departure": []
						},
						"type": "ptFerry"
					}
				]
			}
		]
	}
}`

// SampleEmptyResponse is an empty JSON response
const SampleEmptyResponse = `{}`

// SampleErrorResponse is a sample error envelope
const SampleErrorResponse = `{
	"message": {
		"value": "database unavailable",
		"messageCode": 316,
		"serverTime": "2024-01-01T10:00:30.000+0100"
	}
}`
