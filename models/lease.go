package models

// LeaseRequest carries the form parameters sent by the JRebel agent when
// it asks for a lease.
type LeaseRequest struct {
	// ClientRandomness is the random nonce generated by the agent; it is
	// echoed into the signature payload.
	ClientRandomness string

	// Username is the licensee name reported by the agent.
	Username string

	// GUID is the activation identifier from the agent's activation URL.
	GUID string

	// Offline reports whether the agent requests an offline lease.
	Offline bool

	// ClientTime is the agent clock in Unix milliseconds; start of the
	// offline validity window.
	ClientTime int64

	// OfflineDays is the requested offline lease length in days.
	OfflineDays int
}

// JRebelLease is the lease-grant payload returned to the JRebel agent.
type JRebelLease struct {
	ServerVersion         string   `json:"serverVersion"`
	ServerProtocolVersion string   `json:"serverProtocolVersion"`
	ServerGUID            string   `json:"serverGuid"`
	GroupType             string   `json:"groupType"`
	ID                    int      `json:"id"`
	LicenseType           int      `json:"licenseType"`
	EvaluationLicense     bool     `json:"evaluationLicense"`
	Signature             string   `json:"signature"`
	ServerRandomness      string   `json:"serverRandomness"`
	SeatPoolType          string   `json:"seatPoolType"`
	StatusCode            string   `json:"statusCode"`
	Offline               bool     `json:"offline"`
	ValidFrom             int64    `json:"validFrom,omitempty"`
	ValidUntil            int64    `json:"validUntil,omitempty"`
	Company               string   `json:"company"`
	OrderID               string   `json:"orderId"`
	ZeroIDs               []string `json:"zeroIds"`
	LicenseValidFrom      int64    `json:"licenseValidFrom"`
	LicenseValidUntil     int64    `json:"licenseValidUntil"`
}

// JRebelLeaseAck acknowledges a lease release (the "/leases/1" calls).
type JRebelLeaseAck struct {
	ServerVersion         string  `json:"serverVersion"`
	ServerProtocolVersion string  `json:"serverProtocolVersion"`
	ServerGUID            string  `json:"serverGuid"`
	GroupType             string  `json:"groupType"`
	StatusCode            string  `json:"statusCode"`
	Msg                   *string `json:"msg"`
	StatusMessage         *string `json:"statusMessage"`
}

// JRebelConnectionValidation answers the agent's connection probe.
type JRebelConnectionValidation struct {
	ServerVersion         string `json:"serverVersion"`
	ServerProtocolVersion string `json:"serverProtocolVersion"`
	ServerGUID            string `json:"serverGuid"`
	GroupType             string `json:"groupType"`
	StatusCode            string `json:"statusCode"`
	Company               string `json:"company"`
	CanGetLease           bool   `json:"canGetLease"`
	LicenseType           int    `json:"licenseType"`
	EvaluationLicense     bool   `json:"evaluationLicense"`
	SeatPoolType          string `json:"seatPoolType"`
}
