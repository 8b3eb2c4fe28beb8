package sysconfig

// SystemConfig is the singleton settings record shown on the settings page
// and on report headers.
type SystemConfig struct {
	OrgName    string `json:"orgName"`
	FiscalYear string `json:"fiscalYear"`
}
