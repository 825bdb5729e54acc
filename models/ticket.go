package models

import "encoding/xml"

// JetBrains license-flow responses. Each of these is serialized to XML
// and prefixed with an RSA signature comment before being written to the
// client; element order matters to the IDE, so the field order below is
// fixed.

// ObtainTicketResponse answers /rpc/obtainTicket.action.
type ObtainTicketResponse struct {
	XMLName            xml.Name `xml:"ObtainTicketResponse"`
	Message            string   `xml:"message"`
	ProlongationPeriod int64    `xml:"prolongationPeriod"`
	ResponseCode       string   `xml:"responseCode"`
	Salt               string   `xml:"salt"`
	TicketID           string   `xml:"ticketId"`
	TicketProperties   string   `xml:"ticketProperties"`
}

// PingResponse answers /rpc/ping.action.
type PingResponse struct {
	XMLName      xml.Name `xml:"PingResponse"`
	Message      string   `xml:"message"`
	ResponseCode string   `xml:"responseCode"`
	Salt         string   `xml:"salt"`
}

// ReleaseTicketResponse answers /rpc/releaseTicket.action.
type ReleaseTicketResponse struct {
	XMLName      xml.Name `xml:"ReleaseTicketResponse"`
	Message      string   `xml:"message"`
	ResponseCode string   `xml:"responseCode"`
	Salt         string   `xml:"salt"`
}
