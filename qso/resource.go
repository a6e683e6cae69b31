// Package qso assembles logged contacts (types.Qso) into the resource shape served to clients.
package qso

// Resource is the transport view of a logged contact.
type Resource struct {
	Call            string `json:"call"`
	Name            string `json:"name,omitempty"`
	Country         string `json:"country,omitempty"`
	Continent       string `json:"continent,omitempty"`
	Band            string `json:"band"`
	Mode            string `json:"mode"`
	FrequencyHz     int64  `json:"frequency_hz,omitempty"`
	Date            string `json:"date,omitempty"`
	TimeOn          string `json:"time_on,omitempty"`
	TimeOff         string `json:"time_off,omitempty"`
	RstSent         string `json:"rst_sent,omitempty"`
	RstRcvd         string `json:"rst_rcvd,omitempty"`
	StationCallsign string `json:"station_callsign"`
	Operator        string `json:"operator,omitempty"`
}
