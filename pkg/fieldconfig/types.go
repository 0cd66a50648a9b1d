package fieldconfig

// RuleSpec is a rule as written in a definition file.
type RuleSpec struct {
	Type    string      `json:"type" yaml:"type" toml:"type"`
	Options RuleOptions `json:"options" yaml:"options" toml:"options"`
}

// RuleOptions carries the payload of every rule type. Date accepts `today`,
// `today+N`, `today-N` (days) or an ISO date; Check names a registered
// custom check.
type RuleOptions struct {
	Date    string `json:"date,omitempty" yaml:"date,omitempty" toml:"date"`
	Check   string `json:"check,omitempty" yaml:"check,omitempty" toml:"check"`
	Message string `json:"message,omitempty" yaml:"message,omitempty" toml:"message"`
}

// Definition is one field read from a file.
type Definition struct {
	Name                 string     `json:"-" yaml:"-" toml:"-"`
	Source               string     `json:"-" yaml:"-" toml:"-"`
	Label                string     `json:"label" yaml:"label" toml:"label"`
	Format               string     `json:"format" yaml:"format" toml:"format"`
	ReturnFormat         string     `json:"dateFormatReturn" yaml:"dateFormatReturn" toml:"dateFormatReturn"`
	Required             bool       `json:"required" yaml:"required" toml:"required"`
	DisableErrorHandling bool       `json:"disableErrorHandling" yaml:"disableErrorHandling" toml:"disableErrorHandling"`
	Range                bool       `json:"displayRange" yaml:"displayRange" toml:"displayRange"`
	Locale               string     `json:"locale" yaml:"locale" toml:"locale"`
	SuccessMessage       string     `json:"successMessage" yaml:"successMessage" toml:"successMessage"`
	AutoClamp            *bool      `json:"autoClamp" yaml:"autoClamp" toml:"autoClamp"`
	AllowedPattern       string     `json:"allowedPattern" yaml:"allowedPattern" toml:"allowedPattern"`
	CustomRules          []RuleSpec `json:"customRules" yaml:"customRules" toml:"customRules"`
	CustomWarningRules   []RuleSpec `json:"customWarningRules" yaml:"customWarningRules" toml:"customWarningRules"`
}
