package domain

// CompanyInfo is the settings object shown on invoices and reports. It is the
// only state persisted to disk.
type CompanyInfo struct {
	Name      string `json:"name" mapstructure:"name"`
	TRNNumber string `json:"TRNNumber" mapstructure:"trn_number"`
	Address   string `json:"address" mapstructure:"address"`
	Logo      string `json:"logo" mapstructure:"logo"`
}
